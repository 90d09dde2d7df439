package curriculum

import "github.com/WaseemSyawish/lingua/internal/model"

var b2Curriculum = LevelCurriculum{
	Level:           model.LevelB2,
	Label:           "Upper Intermediate",
	Description:     "Can interact with a degree of fluency and spontaneity that makes regular interaction with native speakers quite possible. Can produce clear, detailed text on a wide range of subjects.",
	LanguageBalance: "Nearly all French. English used sparingly, for nuanced cultural explanations only.",
	VocabularyClusters: []VocabularyCluster{
		{
			ConceptID: "vocab.professional",
			Name:      "Professional vocabulary",
			Words:     []string{"chiffre d'affaires", "concurrence", "stratégie", "rentabilité", "partenariat", "négociation", "échéance", "bilan"},
		},
		{
			ConceptID: "vocab.formal_expressions",
			Name:      "Formal expressions",
			Words:     []string{"je vous prie d'agréer", "veuillez trouver ci-joint", "dans les meilleurs délais", "en l'occurrence", "le cas échéant"},
		},
		{
			ConceptID: "vocab.idioms_advanced",
			Name:      "Advanced idioms",
			Words:     []string{"mettre la main à la pâte", "passer du coq à l'âne", "tirer son épingle du jeu", "ne pas y aller par quatre chemins", "faire d'une pierre deux coups"},
		},
		{
			ConceptID: "vocab.cultural_references",
			Name:      "Cultural references",
			Words:     []string{"laïcité", "baccalauréat", "grève", "terroir", "francophonie", "patrimoine", "gastronomie"},
		},
		{
			ConceptID: "vocab.near_synonyms",
			Name:      "Near-synonym discrimination",
			Words:     []string{"amener/apporter", "savoir/connaître", "entendre/écouter", "voir/regarder", "an/année", "jour/journée"},
		},
	},
	GrammarConcepts: []GrammarConcept{
		{
			ConceptID:   "grammar.subjonctif_triggers",
			Name:        "Subjonctif — all triggers",
			Description: "Subjunctive after emotion, doubt, necessity, and conjunctions (bien que, pour que, à condition que)",
			Examples:    []string{"Bien qu'il soit tard...", "Je doute qu'elle vienne.", "Pour que tu comprennes..."},
		},
		{
			ConceptID:   "grammar.conditionnel_passe",
			Name:        "Conditionnel passé",
			Description: "Regrets and reproaches",
			Examples:    []string{"J'aurais dû venir.", "Tu aurais pu me le dire."},
		},
		{
			ConceptID:   "grammar.si_clauses_3",
			Name:        "Si clauses (type 3)",
			Description: "Unreal past conditions",
			Examples:    []string{"Si j'avais su, je ne serais pas venu."},
		},
		{
			ConceptID:   "grammar.discours_indirect",
			Name:        "Reported speech",
			Description: "Tense shifting in discours indirect",
			Examples:    []string{"Il a dit qu'il viendrait.", "Elle m'a demandé si j'avais fini."},
		},
		{
			ConceptID:   "grammar.passive_voice",
			Name:        "Passive voice variations",
			Description: "Passive constructions and their alternatives (on, se faire + infinitive)",
			Examples:    []string{"La décision a été prise.", "Il s'est fait voler son vélo."},
		},
		{
			ConceptID:   "grammar.double_pronouns",
			Name:        "Double pronouns",
			Description: "Ordering of object pronouns",
			Examples:    []string{"Je le lui ai donné.", "Elle m'en a parlé.", "Ne le leur dis pas."},
		},
	},
	MasteryEvidence: []string{
		"Debates abstract topics with precision and nuance",
		"Switches between formal and informal register appropriately",
		"Error rate low enough that correction shifts to style",
		"Understands French humor and common cultural references",
	},
	ConceptIDs: []string{
		"grammar.subjonctif_triggers",
		"grammar.conditionnel_passe",
		"grammar.si_clauses_3",
		"grammar.discours_indirect",
		"grammar.passive_voice",
		"grammar.double_pronouns",
		"vocab.professional",
		"vocab.formal_expressions",
		"vocab.idioms_advanced",
		"vocab.cultural_references",
		"vocab.near_synonyms",
	},
}
