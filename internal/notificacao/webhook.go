package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/ConstrutoraVallim/api-gestao/internal/alerta"
)

// EnviarWebhookVencidos avisa o canal configurado (WEBHOOK_ALERTAS_URL)
// sobre os alertas já vencidos. Falha de envio só loga: o painel não
// depende do webhook.
func EnviarWebhookVencidos(alertas []alerta.Alerta) {
	url := os.Getenv("WEBHOOK_ALERTAS_URL")
	if url == "" {
		return
	}

	var vencidos []alerta.Alerta
	for _, a := range alertas {
		if a.Classificacao.Severidade == alerta.SeveridadeVencido {
			vencidos = append(vencidos, a)
		}
	}
	if len(vencidos) == 0 {
		return
	}

	payload := map[string]interface{}{
		"mensagem": "Alerta: documentos e contas vencidos no painel",
		"total":    len(vencidos),
		"alertas":  vencidos,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("Webhook respondeu %d ao aviso de %d vencidos", resp.StatusCode, len(vencidos))
	}
}
