package curriculum

import "github.com/WaseemSyawish/lingua/internal/model"

var a0Curriculum = LevelCurriculum{
	Level:           model.LevelA0,
	Label:           "Pre-beginner",
	Description:     "Zero French exposure. Building comfort and first contact with the language.",
	LanguageBalance: "Entirely English. French only as isolated words woven naturally into English conversation with immediate translation. Never ask the learner to form French sentences.",
	VocabularyClusters: []VocabularyCluster{
		{
			ConceptID: "vocab.greetings_basic",
			Name:      "Greetings",
			Words:     []string{"bonjour", "bonsoir", "salut", "au revoir", "merci", "s'il vous plaît", "de rien"},
		},
		{
			ConceptID: "vocab.daily_nouns_basic",
			Name:      "Daily nouns",
			Words:     []string{"café", "eau", "pain", "matin", "soir", "maison", "école"},
		},
		{
			ConceptID: "vocab.responses_basic",
			Name:      "Responses",
			Words:     []string{"oui", "non", "ça va", "très bien", "d'accord"},
		},
		{
			ConceptID: "vocab.numbers_1_10",
			Name:      "Numbers",
			Words:     []string{"un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf", "dix"},
		},
		{
			ConceptID: "vocab.identity_basic",
			Name:      "Identity",
			Words:     []string{"je", "nom", "comment"},
		},
	},
	GrammarConcepts: []GrammarConcept{},
	MasteryEvidence: []string{
		"Recognizes and can produce 20+ basic French words",
		"Shows comfort hearing French",
		"Voluntarily tries to use French words",
		"Shows no anxiety or resistance toward the language",
		"At least 3 sessions completed",
	},
	ConceptIDs: []string{
		"vocab.greetings_basic",
		"vocab.daily_nouns_basic",
		"vocab.responses_basic",
		"vocab.numbers_1_10",
		"vocab.identity_basic",
	},
}
