package notafiscal

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// GerarPDF monta o espelho imprimível da nota fiscal: cabeçalho com os
// dados da empresa, tabela de itens e total.
func GerarPDF(n NotaFiscal) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Construtora Vallim"))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Nota Fiscal nº %s", n.Numero)))
	pdf.Ln(6)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Emissão: %s", n.DataEmissao.Format("02/01/2006"))))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, tr("Cliente"))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, tr(n.Cliente))
	pdf.Ln(6)
	if n.CNPJ != "" {
		pdf.Cell(0, 8, tr(fmt.Sprintf("CNPJ: %s", n.CNPJ)))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// tabela de itens
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(100, 8, tr("Descrição"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, tr("Qtd."), "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, tr("Valor unit."), "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, tr("Subtotal"), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range n.Itens {
		subtotal := item.Quantidade * item.ValorUnitario
		pdf.CellFormat(100, 8, tr(item.Descricao), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%.2f", item.Quantidade), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("R$ %.2f", item.ValorUnitario), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("R$ %.2f", subtotal), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(155, 10, tr("Total"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 10, fmt.Sprintf("R$ %.2f", n.ValorTotal), "1", 1, "R", false, 0, "")

	if n.Observacao != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, tr(n.Observacao), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("erro ao gerar PDF da nota %s: %w", n.Numero, err)
	}
	return buf.Bytes(), nil
}
