package services

import (
	"strings"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
)

// chatRule maps trigger keywords to a canned wellness answer. Rules are
// evaluated in order and the first match wins.
type chatRule struct {
	keywords []string
	reply    domain.ChatReply
}

// ChatServiceImpl implements domain.ChatResponder with a fixed keyword table
type ChatServiceImpl struct {
	rules    []chatRule
	fallback domain.ChatReply
}

// NewChatService creates the ArogyaMitra wellness responder
func NewChatService() domain.ChatResponder {
	return &ChatServiceImpl{
		rules: []chatRule{
			{
				keywords: []string{"stress", "anxiety", "mental", "worry"},
				reply: domain.ChatReply{
					Text:        "For stress and anxiety, Ayurveda recommends balancing Vata dosha. Shirodhara (oil pouring therapy) combined with Abhyanga massage can provide deep relaxation. Herbs like Brahmi, Ashwagandha, and Jatamansi are excellent for calming the nervous system. Daily pranayama (breathing exercises) and meditation will help restore mental equilibrium.",
					Suggestions: []string{"Book Shirodhara therapy", "View stress-relief products", "Learn Pranayama techniques", "Ashwagandha supplements"},
				},
			},
			{
				keywords: []string{"pain", "joint", "arthritis", "back", "neck"},
				reply: domain.ChatReply{
					Text:        "For pain management, Ayurveda addresses the root cause through Panchakarma therapies. Basti (medicated enemas) and Abhyanga with warm herbal oils like Mahanarayana or Sahacharadi are highly effective. Supplements containing Guggulu, Shallaki (Boswellia), and turmeric provide natural anti-inflammatory relief. The combination of internal medicines and external therapies gives lasting results.",
					Suggestions: []string{"Book Basti therapy", "Pain-relief oil massage", "Herbal supplements", "Consult Ayurveda doctor"},
				},
			},
			{
				keywords: []string{"digest", "stomach", "acidity", "constipation", "bloating"},
				reply: domain.ChatReply{
					Text:        "Digestive health (Agni) is the cornerstone of Ayurveda. For digestive issues, Virechana (therapeutic purgation) cleanses accumulated toxins. Daily use of Triphala balances all three doshas and improves digestion. Digestive spices like ginger, cumin, and fennel kindle digestive fire. Proper meal timing and eating habits are equally important for gut health.",
					Suggestions: []string{"Book Virechana therapy", "Triphala supplements", "Digestive spice tea", "Diet consultation"},
				},
			},
			{
				keywords: []string{"energy", "tired", "fatigue", "weakness"},
				reply: domain.ChatReply{
					Text:        "Low energy indicates depleted Ojas (vital essence). Rasayana (rejuvenation) therapies like Chyawanprash, Amalaki, and Shatavari restore vitality. Regular Abhyanga massage improves circulation and energy flow. Proper sleep, balanced nutrition, and gentle exercise like yoga help rebuild energy reserves naturally.",
					Suggestions: []string{"Rasayana therapy", "Chyawanprash supplements", "Energy-boosting massage", "Yoga consultation"},
				},
			},
			{
				keywords: []string{"skin", "acne", "eczema", "rash", "pigmentation"},
				reply: domain.ChatReply{
					Text:        "Skin issues often reflect internal imbalances, particularly Pitta dosha. Blood purification through herbs like Neem, Manjistha, and Sariva helps clear toxins. External applications of medicated oils and face packs provide relief. A Pitta-pacifying diet avoiding spicy, oily foods is essential for lasting skin health.",
					Suggestions: []string{"Blood purification therapy", "Herbal face packs", "Neem supplements", "Skin consultation"},
				},
			},
			{
				keywords: []string{"sleep", "insomnia", "rest"},
				reply: domain.ChatReply{
					Text:        "Sleep disorders indicate Vata imbalance. Shiropichu (oil pooling on head) and gentle head massage with Brahmi oil promote natural sleep. Herbs like Tagara, Jatamansi, and warm milk with nutmeg before bed help induce restful sleep. Establishing a calming evening routine is crucial.",
					Suggestions: []string{"Sleep therapy treatment", "Brahmi oil massage", "Herbal sleep aids", "Sleep hygiene consultation"},
				},
			},
			{
				keywords: []string{"weight", "obesity", "fat", "metabolism"},
				reply: domain.ChatReply{
					Text:        "Weight management in Ayurveda focuses on balancing metabolism (Agni) and reducing Kapha dosha. Udwartana (herbal powder massage) and specific Panchakarma therapies help. Herbs like Triphala, Guggulu, and Vrikshamla support healthy weight. A Kapha-reducing diet with regular exercise is essential.",
					Suggestions: []string{"Udwartana therapy", "Weight management herbs", "Metabolism consultation", "Kapha diet plan"},
				},
			},
			{
				keywords: []string{"ayurveda", "dosha", "constitution", "prakriti"},
				reply: domain.ChatReply{
					Text:        "Ayurveda is the science of life focusing on prevention and holistic healing. Your unique constitution (Prakriti) determines your optimal diet, lifestyle, and treatments. The three doshas, Vata (movement), Pitta (transformation), and Kapha (structure), govern all body functions. Understanding your constitution helps achieve perfect health balance.",
					Suggestions: []string{"Prakriti consultation", "Dosha assessment", "Lifestyle guidance", "Ayurveda education"},
				},
			},
			{
				keywords: []string{"therapy", "treatment", "panchakarma"},
				reply: domain.ChatReply{
					Text:        "Panchakarma is Ayurveda's premier detoxification and rejuvenation therapy consisting of five main procedures: Vamana (emesis), Virechana (purgation), Basti (enemas), Nasya (nasal therapy), and Raktamokshana (bloodletting). These therapies remove deep-seated toxins and restore natural balance. The treatment is customized based on individual constitution and health conditions.",
					Suggestions: []string{"Panchakarma consultation", "Therapy packages", "Treatment planning", "Book assessment"},
				},
			},
		},
		fallback: domain.ChatReply{
			Text:        "Namaste! As your Ayurveda wellness guide, I can help with stress management, pain relief, digestive health, energy enhancement, skin care, sleep issues, and overall wellness. Ayurveda offers personalized solutions based on your unique constitution and current health status. What specific area would you like to explore?",
			Suggestions: []string{"Take health assessment", "Book consultation", "View therapies", "Explore products", "Learn about doshas"},
		},
	}
}

// Reply implements domain.ChatResponder
func (s *ChatServiceImpl) Reply(message string) *domain.ChatReply {
	input := strings.ToLower(message)
	for _, rule := range s.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(input, keyword) {
				reply := rule.reply
				return &reply
			}
		}
	}
	reply := s.fallback
	return &reply
}
