package prompt

import (
	"fmt"
	"strings"
)

// DefaultLeadName is used when no lead record resolves a display name.
const DefaultLeadName = "desconhecido"

const (
	// FolderFileName is the user-visible name of the dispatched PDF.
	FolderFileName = "informacoes-kitnets.pdf"
	FolderCaption  = "Aqui está o folder com todas as informações das kitnets."
	VideoFileName  = "tour-kitnet.mp4"
	VideoCaption   = "Dá uma olhada no tour da kitnet."
)

// FallbackWaitlist is the deterministic reply used when orchestration fails
// and no unit is available (or availability cannot be read).
const FallbackWaitlist = "Oi! No momento estamos sem kitnets disponíveis, mas posso te colocar na lista de espera. Quer deixar seu nome que aviso assim que vagar uma?"

// FallbackWithUnits is the deterministic reply used when orchestration fails
// but availability is known.
func FallbackWithUnits(count int, price float64) string {
	unit := "kitnets disponíveis"
	if count == 1 {
		unit = "kitnet disponível"
	}
	return fmt.Sprintf("Oi! Temos %d %s a partir de %s por mês. Quer agendar uma visita?", count, unit, FormatPrice(price))
}

// FormatPrice renders a value as Brazilian currency. A missing reference
// price is treated as zero, never as an error.
func FormatPrice(value float64) string {
	if value < 0 {
		value = 0
	}
	cents := int64(value*100 + 0.5)
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(d)
	}
	return fmt.Sprintf("R$ %s,%02d", sb.String(), frac)
}
