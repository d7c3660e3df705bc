package insight

import (
	"fmt"
	"strings"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
)

// Stakeholder types understood by the value proposition builder.
const (
	StakeholderTechnical = "Técnico"
	StakeholderFinancial = "Financeiro"
	StakeholderExecutive = "Executivo"
)

// DefaultStakeholders is the audience assumed when the caller names none.
var DefaultStakeholders = []string{StakeholderTechnical, StakeholderFinancial, StakeholderExecutive}

var defaultPainPoints = []string{
	"Processo manual ineficiente",
	"Altos custos operacionais",
	"Dificuldade em escalar operações",
	"Falta de visibilidade em tempo real",
}

var defaultSolutionBenefits = []string{
	"Automação de processos manuais",
	"Redução de custos operacionais",
	"Escalabilidade da solução",
	"Dashboards em tempo real",
	"Melhoria na experiência do cliente",
}

// stakeholderFocus holds the vocabulary used to match pains and benefits
// to what each stakeholder type cares about.
type stakeholderFocus struct {
	valueThemes []string
	keyMetrics  []string
}

var stakeholderFocuses = map[string]stakeholderFocus{
	StakeholderTechnical: {
		valueThemes: []string{"eficiência", "precisão", "robustez", "escalabilidade", "integração", "manutenção"},
		keyMetrics:  []string{"tempo de processamento", "taxa de erro", "disponibilidade do sistema", "capacidade de resposta"},
	},
	StakeholderFinancial: {
		valueThemes: []string{"roi", "economia", "eficiência de custos", "controle orçamentário", "previsibilidade financeira"},
		keyMetrics:  []string{"payback", "economia mensal", "redução de despesas", "margem de contribuição"},
	},
	StakeholderExecutive: {
		valueThemes: []string{"vantagem competitiva", "crescimento", "inovação", "visão estratégica", "posicionamento no mercado"},
		keyMetrics:  []string{"market share", "satisfação do cliente", "agilidade nos negócios", "tempo de lançamento"},
	},
}

func (f stakeholderFocus) matches(text string) bool {
	lower := strings.ToLower(text)
	return containsAny(lower, f.valueThemes...) || containsAny(lower, f.keyMetrics...)
}

// selectRelevant keeps the items matching the stakeholder's vocabulary,
// falling back to the first item so each stakeholder gets at least one.
func (f stakeholderFocus) selectRelevant(items []string) []string {
	var relevant []string
	for _, item := range items {
		if f.matches(item) {
			relevant = append(relevant, item)
		}
	}
	if len(relevant) == 0 && len(items) > 0 {
		relevant = []string{items[0]}
	}
	return relevant
}

// BuildValueProposition tailors a value proposition to each target
// stakeholder type from the client's pain points and the solution's
// benefits. Unknown stakeholder types are skipped; empty inputs fall
// back to generic consulting defaults.
func BuildValueProposition(painPoints, solutionBenefits, targetStakeholders []string) *domain.ValueProposition {
	if len(painPoints) == 0 {
		painPoints = defaultPainPoints
	}
	if len(solutionBenefits) == 0 {
		solutionBenefits = defaultSolutionBenefits
	}
	if len(targetStakeholders) == 0 {
		targetStakeholders = DefaultStakeholders
	}

	propositions := make(map[string]domain.StakeholderProposition)
	var allPains, allBenefits []string
	seenPain := make(map[string]bool)
	seenBenefit := make(map[string]bool)

	for _, stakeholder := range targetStakeholders {
		focus, ok := stakeholderFocuses[stakeholder]
		if !ok {
			continue
		}

		relevantPains := focus.selectRelevant(painPoints)
		relevantBenefits := focus.selectRelevant(solutionBenefits)

		mainPain := "desafios atuais"
		if len(relevantPains) > 0 {
			mainPain = relevantPains[0]
		}
		keyBenefit := "benefícios significativos"
		if len(relevantBenefits) > 0 {
			keyBenefit = relevantBenefits[0]
		}

		headline := stakeholderHeadline(stakeholder, strings.ToLower(keyBenefit), strings.ToLower(mainPain))

		var keyPoints []string
		for i, benefit := range relevantBenefits {
			if i == 3 {
				break
			}
			if i < len(relevantPains) {
				keyPoints = append(keyPoints, fmt.Sprintf("Transforma %q em %q", relevantPains[i], benefit))
			} else {
				keyPoints = append(keyPoints, fmt.Sprintf("Proporciona %q", benefit))
			}
		}

		propositions[stakeholder] = domain.StakeholderProposition{
			Headline:           headline,
			KeyPoints:          keyPoints,
			RelevantPainPoints: relevantPains,
			RelevantBenefits:   relevantBenefits,
		}

		for _, p := range relevantPains {
			if !seenPain[p] {
				seenPain[p] = true
				allPains = append(allPains, p)
			}
		}
		for _, b := range relevantBenefits {
			if !seenBenefit[b] {
				seenBenefit[b] = true
				allBenefits = append(allBenefits, b)
			}
		}
	}

	mainPain := "seus principais desafios"
	if len(allPains) > 0 {
		mainPain = strings.ToLower(allPains[0])
	}
	mainBenefit := "benefícios concretos"
	if len(allBenefits) > 0 {
		mainBenefit = strings.ToLower(allBenefits[0])
	}

	main := fmt.Sprintf(
		"Nossa solução resolve %s proporcionando %s, resultando em retorno de investimento significativo e vantagem competitiva.",
		mainPain, mainBenefit,
	)

	return &domain.ValueProposition{
		MainValueProposition:    main,
		StakeholderPropositions: propositions,
		ConsolidatedPainPoints:  allPains,
		ConsolidatedBenefits:    allBenefits,
		TargetStakeholders:      targetStakeholders,
	}
}

func stakeholderHeadline(stakeholder, keyBenefit, mainPain string) string {
	switch stakeholder {
	case StakeholderTechnical:
		return fmt.Sprintf(
			"Nossa solução %s através de tecnologias modernas e práticas de engenharia robustas, eliminando %s e permitindo maior escalabilidade e manutenibilidade do sistema.",
			keyBenefit, mainPain,
		)
	case StakeholderFinancial:
		return fmt.Sprintf(
			"Nosso sistema oferece %s com um retorno claro do investimento, reduzindo %s em até 30%% e permitindo maior controle orçamentário e previsibilidade financeira.",
			keyBenefit, mainPain,
		)
	case StakeholderExecutive:
		return fmt.Sprintf(
			"Nossa solução proporciona %s para sua organização, transformando %s em vantagem competitiva sustentável, posicionando sua empresa à frente da concorrência.",
			keyBenefit, mainPain,
		)
	default:
		return fmt.Sprintf("Nossa solução resolve %s através de %s.", mainPain, keyBenefit)
	}
}
