package curriculum

import "github.com/WaseemSyawish/lingua/internal/model"

var b1Curriculum = LevelCurriculum{
	Level:           model.LevelB1,
	Label:           "Intermediate",
	Description:     "Can deal with most situations likely to arise while travelling. Can describe experiences, dreams and ambitions and briefly give reasons and explanations for opinions and plans.",
	LanguageBalance: "French for almost everything. English only for complex grammar explanations, and only when asked.",
	VocabularyClusters: []VocabularyCluster{
		{
			ConceptID: "vocab.emotions_nuanced",
			Name:      "Nuanced emotions",
			Words:     []string{"soulagé", "ému", "agacé", "ravi", "gêné", "méfiant", "enthousiaste", "découragé", "reconnaissant"},
		},
		{
			ConceptID: "vocab.current_events",
			Name:      "Current events",
			Words:     []string{"actualité", "société", "élection", "manifestation", "débat", "enquête", "témoin", "opinion publique"},
		},
		{
			ConceptID: "vocab.work_career",
			Name:      "Work & career",
			Words:     []string{"entretien", "candidature", "salaire", "compétence", "réunion", "collègue", "démissionner", "embaucher"},
		},
		{
			ConceptID: "vocab.environment",
			Name:      "Environment",
			Words:     []string{"réchauffement", "pollution", "recyclage", "énergie renouvelable", "empreinte carbone", "biodiversité"},
		},
		{
			ConceptID: "vocab.common_idioms",
			Name:      "Common idioms",
			Words:     []string{"avoir le cafard", "coûter les yeux de la tête", "poser un lapin", "avoir la pêche", "tomber dans les pommes"},
		},
	},
	GrammarConcepts: []GrammarConcept{
		{
			ConceptID:   "grammar.subjonctif_present",
			Name:        "Subjonctif présent",
			Description: "Subjunctive after il faut que, vouloir que, and common triggers",
			Examples:    []string{"Il faut que tu viennes.", "Je veux qu'il fasse attention."},
		},
		{
			ConceptID:   "grammar.conditionnel",
			Name:        "Conditionnel présent",
			Description: "Polite requests, advice, and hypotheticals",
			Examples:    []string{"Je voudrais un café.", "Tu devrais te reposer.", "On pourrait partir demain."},
		},
		{
			ConceptID:   "grammar.si_clauses_1_2",
			Name:        "Si clauses (types 1 & 2)",
			Description: "Real and unreal conditions",
			Examples:    []string{"Si tu viens, on ira au cinéma.", "Si j'avais le temps, je voyagerais."},
		},
		{
			ConceptID:   "grammar.plus_que_parfait",
			Name:        "Plus-que-parfait",
			Description: "Past-before-the-past",
			Examples:    []string{"J'avais déjà mangé quand il est arrivé."},
		},
		{
			ConceptID:   "grammar.relative_pronouns",
			Name:        "Relative pronouns",
			Description: "qui, que, dont, où",
			Examples:    []string{"Le livre que je lis...", "La ville où je suis né...", "Le film dont tu parles..."},
		},
		{
			ConceptID:   "grammar.connectors",
			Name:        "Connector words",
			Description: "Structuring arguments with cependant, néanmoins, d'ailleurs, pourtant",
			Examples:    []string{"Cependant, je ne suis pas d'accord.", "D'ailleurs, il l'a dit lui-même."},
		},
	},
	MasteryEvidence: []string{
		"Expresses and defends opinions in paragraph-length French",
		"Uses subjunctive and conditional in common triggers without prompting",
		"Follows and contributes to a simple debate",
		"Self-corrects recurring errors when nudged",
	},
	ConceptIDs: []string{
		"grammar.subjonctif_present",
		"grammar.conditionnel",
		"grammar.si_clauses_1_2",
		"grammar.plus_que_parfait",
		"grammar.relative_pronouns",
		"grammar.connectors",
		"vocab.emotions_nuanced",
		"vocab.current_events",
		"vocab.work_career",
		"vocab.environment",
		"vocab.common_idioms",
	},
}
