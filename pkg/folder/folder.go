// Package folder renders the kitnet info-folder PDF dispatched by the
// agent. Each render goes to a unique temporary file; the caller removes
// it after dispatch.
package folder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
)

const title = "Residencial das Acácias — Kitnets para alugar"

var sections = []struct {
	heading string
	body    string
}{
	{
		heading: "Onde ficamos",
		body:    "Rua das Acácias, 120 - Centro, São José dos Campos/SP. Perto de comércio, ponto de ônibus na porta.",
	},
	{
		heading: "As kitnets",
		body:    "Unidades semimobiliadas com armário, pia e box instalados. Água inclusa no aluguel; energia elétrica por conta do inquilino.",
	},
	{
		heading: "Condições",
		body:    "Contrato mínimo de 6 meses. Caução de 1 (um) aluguel na assinatura. Não aceitamos animais de estimação. Sem vaga de garagem; estacionamento rotativo na rua. Horário de silêncio das 22h às 7h.",
	},
	{
		heading: "Documentos necessários",
		body:    "RG, CPF e comprovante de renda.",
	},
	{
		heading: "Visitas",
		body:    "De segunda a sábado, das 9h às 18h. Fale com a gente pelo WhatsApp para agendar.",
	},
}

type Generator struct {
	dir string
}

// NewGenerator writes PDFs under dir; empty means the OS temp dir.
func NewGenerator(dir string) *Generator {
	if strings.TrimSpace(dir) == "" {
		dir = os.TempDir()
	}
	return &Generator{dir: dir}
}

// Generate renders the folder and returns the file path. The path is
// unique per invocation, so concurrent turns never collide.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 9, tr(title), "", "C", false)
	pdf.Ln(4)

	for _, section := range sections {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 7, tr(section.heading), "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(section.body), "", "L", false)
		pdf.Ln(3)
	}

	path := filepath.Join(g.dir, fmt.Sprintf("folder-%s.pdf", uuid.NewString()))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write folder pdf: %w", err)
	}
	return path, nil
}
