package advisory

import (
	"strconv"
	"strings"
)

// DefaultLabel is used when the simulator is run without an asset type.
const DefaultLabel = "Título Geral"

// BuildPrompt renders the advisor instructions for one scenario.
func BuildPrompt(principal, horizonYears, annualRatePercent float64, label string) string {
	if strings.TrimSpace(label) == "" {
		label = DefaultLabel
	}

	var sb strings.Builder
	sb.WriteString("Atue como um consultor financeiro sénior.\n")
	sb.WriteString("O utilizador está a simular um investimento com os seguintes parâmetros:\n")
	sb.WriteString("- Valor Inicial: " + num(principal) + " Kz\n")
	sb.WriteString("- Tempo: " + num(horizonYears) + " anos\n")
	sb.WriteString("- Taxa de Retorno Anual Estimada: " + num(annualRatePercent) + "%\n")
	sb.WriteString("- Tipo de investimento focado: " + label + "\n\n")
	sb.WriteString("Forneça uma análise breve (máximo 3 frases) sobre este cenário.\n")
	sb.WriteString("Mencione riscos potenciais e se a taxa parece realista para o tipo de ativo.\n")
	sb.WriteString("Responda em Português de Portugal.\n")
	sb.WriteString("Mantenha um tom profissional, elegante e direto.\n")
	return sb.String()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
