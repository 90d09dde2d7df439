package curriculum

import "github.com/WaseemSyawish/lingua/internal/model"

var c1Curriculum = LevelCurriculum{
	Level:           model.LevelC1,
	Label:           "Advanced",
	Description:     "Can understand a wide range of demanding, longer texts, and recognize implicit meaning. Can express ideas fluently and spontaneously.",
	LanguageBalance: "Entirely French at all times. The tutor behaves as an educated native speaker. No English under any circumstances.",
	VocabularyClusters: []VocabularyCluster{
		{
			ConceptID: "vocab.precise_emotions",
			Name:      "Precise emotional vocabulary",
			Words:     []string{"atterré", "ébahi", "navré", "émerveillé", "consterné", "désemparé", "exalté", "accablé", "résigné"},
		},
		{
			ConceptID: "vocab.academic_discourse",
			Name:      "Academic discourse",
			Words:     []string{"hypothèse", "méthodologie", "paradigme", "corpus", "en somme", "à cet égard", "il s'avère que", "en ce qui concerne", "sous-jacent"},
		},
		{
			ConceptID: "vocab.stylistic_devices",
			Name:      "Stylistic devices",
			Words:     []string{"litote", "euphémisme", "ironie", "métaphore", "antithèse", "hyperbole", "périphrase"},
		},
		{
			ConceptID: "vocab.familiar_regional",
			Name:      "Familiar/regional language",
			Words:     []string{"verlan", "meuf", "keuf", "kiffer", "ouf", "relou", "chanmé", "galère"},
		},
		{
			ConceptID: "vocab.philosophical",
			Name:      "Philosophical vocabulary",
			Words:     []string{"éthique", "morale", "déterminisme", "existentialisme", "phénoménologie", "altérité", "dialectique"},
		},
	},
	GrammarConcepts: []GrammarConcept{
		{
			ConceptID:   "grammar.subjonctif_all_tenses",
			Name:        "Subjunctive — all tenses",
			Description: "Including imparfait du subjonctif (at least recognition)",
			Examples:    []string{"Il eût fallu qu'il vînt.", "Je souhaitais qu'il fît attention."},
		},
		{
			ConceptID:   "grammar.nominalisation_mastery",
			Name:        "Nominalisation mastery",
			Description: "Fluid conversion between verbal and nominal forms",
			Examples:    []string{"La restructuration de l'entreprise...", "L'augmentation des prix entraîne..."},
		},
		{
			ConceptID:   "grammar.discourse_structuring",
			Name:        "Advanced discourse structuring",
			Description: "Organizing complex arguments with sophisticated connectors",
			Examples:    []string{"D'une part... d'autre part...", "Non seulement... mais encore...", "En premier lieu... en second lieu..."},
		},
		{
			ConceptID:   "grammar.stylistic_inversion",
			Name:        "Stylistic inversion",
			Description: "Inverted subject-verb for emphasis or literary style",
			Examples:    []string{"À peine était-il arrivé que...", "Peut-être devriez-vous...", "Sans doute est-ce la raison."},
		},
		{
			ConceptID:   "grammar.literary_tenses",
			Name:        "Literary tenses",
			Description: "Passé simple and imparfait du subjonctif recognition and limited production",
			Examples:    []string{"Il fut surpris.", "Ils allèrent au marché.", "Elle chanta toute la nuit."},
		},
		{
			ConceptID:   "grammar.implicit_meaning",
			Name:        "Implicit meaning construction",
			Description: "Saying things indirectly — understatement, suggestion, implication",
			Examples:    []string{"Ce n'est pas que je n'aime pas, mais...", "Il semblerait que...", "On pourrait éventuellement..."},
		},
		{
			ConceptID:   "grammar.advanced_concession",
			Name:        "Advanced concession structures",
			Description: "Complex concessive constructions",
			Examples:    []string{"Quand bien même il viendrait...", "Pour autant que je sache...", "Tout intelligent qu'il soit..."},
		},
	},
	MasteryEvidence: []string{
		"Near-native accuracy in all core grammar",
		"Can handle any topic without preparation",
		"Demonstrates stylistic range across registers",
		"Error rate <5% in core grammar",
		"Shows awareness of cultural and pragmatic nuance",
		"Can detect and use irony, understatement, and implicit meaning",
	},
	ConceptIDs: []string{
		"grammar.subjonctif_all_tenses",
		"grammar.nominalisation_mastery",
		"grammar.discourse_structuring",
		"grammar.stylistic_inversion",
		"grammar.literary_tenses",
		"grammar.implicit_meaning",
		"grammar.advanced_concession",
		"vocab.precise_emotions",
		"vocab.academic_discourse",
		"vocab.stylistic_devices",
		"vocab.familiar_regional",
		"vocab.philosophical",
	},
}
