package curriculum

import "github.com/WaseemSyawish/lingua/internal/model"

var c2Curriculum = LevelCurriculum{
	Level:           model.LevelC2,
	Label:           "Mastery",
	Description:     "Can understand virtually everything heard or read. Can summarize information from different sources, reconstructing arguments in a coherent presentation.",
	LanguageBalance: "Entirely French. The tutor behaves as a native conversation partner across any domain. Enrichment and maintenance mode.",
	VocabularyClusters: []VocabularyCluster{
		{
			ConceptID: "vocab.literary_archaic",
			Name:      "Literary & archaic",
			Words:     []string{"nonobstant", "sus", "naguère", "dorénavant", "outrecuidance", "forfaire", "magnanime"},
		},
		{
			ConceptID: "vocab.domain_specific",
			Name:      "Domain-specific precision",
			Words:     []string{"jurisprudence", "épistémologie", "herméneutique", "ontologie", "sémiologie", "praxis"},
		},
		{
			ConceptID: "vocab.creative_expression",
			Name:      "Creative expression",
			Words:     []string{"synesthésie", "prosopopée", "oxymore", "chiasme", "anaphore", "zeugme"},
		},
	},
	GrammarConcepts: []GrammarConcept{
		{
			ConceptID:   "grammar.c2_stylistic_mastery",
			Name:        "Complete stylistic mastery",
			Description: "All grammatical structures used with native-level precision and style",
			Examples:    []string{"Eût-il su, il n'en eût rien fait.", "Fût-ce la dernière fois..."},
		},
		{
			ConceptID:   "grammar.c2_register_full",
			Name:        "Full register mastery",
			Description: "Effortless switching between argot, standard, soutenu, and littéraire",
			Examples:    []string{"Argot: Il s'est barré.", "Standard: Il est parti.", "Soutenu: Il a pris congé.", "Littéraire: Il s'en fut."},
		},
	},
	MasteryEvidence: []string{
		"C2 is the ceiling — tutor shifts to maintenance and enrichment",
		"Near-zero systematic errors",
		"Native-level fluency across all domains",
		"Full cultural and pragmatic competence",
	},
	ConceptIDs: []string{
		"grammar.c2_stylistic_mastery",
		"grammar.c2_register_full",
		"vocab.literary_archaic",
		"vocab.domain_specific",
		"vocab.creative_expression",
	},
}
