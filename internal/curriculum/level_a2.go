package curriculum

import "github.com/WaseemSyawish/lingua/internal/model"

var a2Curriculum = LevelCurriculum{
	Level:           model.LevelA2,
	Label:           "Elementary",
	Description:     "Can communicate in simple, routine situations and describe aspects of their background and immediate environment in simple terms.",
	LanguageBalance: "French for most of the conversation, English reserved for explanations and genuinely new concepts.",
	VocabularyClusters: []VocabularyCluster{
		{
			ConceptID: "vocab.travel",
			Name:      "Travel",
			Words:     []string{"gare", "billet", "valise", "avion", "train", "hôtel", "réservation", "voyage", "plan"},
		},
		{
			ConceptID: "vocab.shopping",
			Name:      "Shopping",
			Words:     []string{"magasin", "prix", "acheter", "vendre", "cher", "soldes", "taille", "payer", "monnaie"},
		},
		{
			ConceptID: "vocab.health",
			Name:      "Health",
			Words:     []string{"médecin", "malade", "pharmacie", "douleur", "rendez-vous", "médicament", "fatigué"},
		},
		{
			ConceptID: "vocab.household",
			Name:      "Household items",
			Words:     []string{"cuisine", "chambre", "salle de bain", "meuble", "lit", "table", "frigo", "clé"},
		},
		{
			ConceptID: "vocab.emotions_basic",
			Name:      "Emotions",
			Words:     []string{"heureux", "triste", "fâché", "surpris", "inquiet", "fier", "déçu", "nerveux"},
		},
	},
	GrammarConcepts: []GrammarConcept{
		{
			ConceptID:   "grammar.passe_compose",
			Name:        "Passé composé",
			Description: "Past tense with avoir and être, including agreement with être",
			Examples:    []string{"J'ai mangé une pomme.", "Elle est allée au marché.", "Nous avons vu un film."},
		},
		{
			ConceptID:   "grammar.imparfait_intro",
			Name:        "Imparfait introduction",
			Description: "Describing ongoing or habitual past states",
			Examples:    []string{"Il faisait beau.", "Quand j'étais petit, je jouais au foot."},
		},
		{
			ConceptID:   "grammar.possessive_adjectives",
			Name:        "Possessive adjectives",
			Description: "mon/ma/mes, ton/ta/tes, son/sa/ses and agreement",
			Examples:    []string{"ma sœur", "ton livre", "ses amis"},
		},
		{
			ConceptID:   "grammar.object_pronouns",
			Name:        "Direct object pronouns",
			Description: "le, la, les replacing direct objects",
			Examples:    []string{"Je le vois.", "Tu la connais?", "Nous les achetons."},
		},
		{
			ConceptID:   "grammar.comparisons",
			Name:        "Comparisons",
			Description: "plus/moins/aussi ... que",
			Examples:    []string{"Paris est plus grand que Lyon.", "Il est aussi gentil que son frère."},
		},
	},
	MasteryEvidence: []string{
		"Narrates simple past events with passé composé",
		"Handles routine transactions (shopping, directions, appointments)",
		"Produces 2-3 sentence responses without prompting",
		"Distinguishes passé composé from imparfait in clear cases",
	},
	ConceptIDs: []string{
		"grammar.passe_compose",
		"grammar.imparfait_intro",
		"grammar.possessive_adjectives",
		"grammar.object_pronouns",
		"grammar.comparisons",
		"vocab.travel",
		"vocab.shopping",
		"vocab.health",
		"vocab.household",
		"vocab.emotions_basic",
	},
}
