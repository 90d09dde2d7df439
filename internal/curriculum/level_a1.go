package curriculum

import "github.com/WaseemSyawish/lingua/internal/model"

var a1Curriculum = LevelCurriculum{
	Level:           model.LevelA1,
	Label:           "Beginner",
	Description:     "Can understand and use familiar everyday expressions and very basic phrases. Can introduce themselves and ask simple personal questions.",
	LanguageBalance: "Mostly English with short French sentences. New vocabulary always translated; previously learned words gradually left untranslated.",
	VocabularyClusters: []VocabularyCluster{
		{
			ConceptID: "vocab.family",
			Name:      "Family",
			Words:     []string{"mère", "père", "frère", "sœur", "parents", "enfant", "grand-mère", "grand-père", "famille"},
		},
		{
			ConceptID: "vocab.daily_activities",
			Name:      "Daily activities",
			Words:     []string{"manger", "boire", "dormir", "travailler", "étudier", "parler", "écouter", "regarder", "aimer"},
		},
		{
			ConceptID: "vocab.food_basic",
			Name:      "Food & drink",
			Words:     []string{"fromage", "croissant", "pomme", "lait", "thé", "jus", "légume", "viande", "poisson"},
		},
		{
			ConceptID: "vocab.weather_basic",
			Name:      "Weather",
			Words:     []string{"il pleut", "il fait beau", "il fait froid", "il fait chaud", "soleil", "nuage", "vent"},
		},
		{
			ConceptID: "vocab.colors_adjectives",
			Name:      "Colors & adjectives",
			Words:     []string{"rouge", "bleu", "vert", "noir", "blanc", "grand", "petit", "joli", "content"},
		},
	},
	GrammarConcepts: []GrammarConcept{
		{
			ConceptID:   "grammar.present_etre_avoir",
			Name:        "Present tense of être and avoir",
			Description: "The two core irregular verbs in the present tense",
			Examples:    []string{"Je suis étudiant.", "Tu as un chat.", "Elle est contente."},
		},
		{
			ConceptID:   "grammar.present_er_verbs",
			Name:        "Regular -er verbs, present tense",
			Description: "Conjugating regular first-group verbs",
			Examples:    []string{"Je parle français.", "Tu aimes le café.", "Nous regardons un film."},
		},
		{
			ConceptID:   "grammar.subject_pronouns",
			Name:        "Subject pronouns",
			Description: "je, tu, il/elle, nous, vous, ils/elles",
			Examples:    []string{"Je m'appelle Marie.", "Il habite à Paris."},
		},
		{
			ConceptID:   "grammar.articles_basic",
			Name:        "Definite and indefinite articles",
			Description: "le, la, les, un, une, des and gender agreement",
			Examples:    []string{"le chat", "une maison", "les enfants"},
		},
	},
	MasteryEvidence: []string{
		"Can introduce themselves and exchange basic personal information",
		"Produces short French sentences with correct subject pronouns",
		"Uses être/avoir and regular -er verbs in the present tense",
		"Understands slow, clearly articulated French about familiar topics",
	},
	ConceptIDs: []string{
		"grammar.present_etre_avoir",
		"grammar.present_er_verbs",
		"grammar.subject_pronouns",
		"grammar.articles_basic",
		"vocab.family",
		"vocab.daily_activities",
		"vocab.food_basic",
		"vocab.weather_basic",
		"vocab.colors_adjectives",
	},
}
