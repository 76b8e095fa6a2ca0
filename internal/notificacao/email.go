package notificacao

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/ConstrutoraVallim/api-gestao/internal/alerta"
)

var (
	sesClient *ses.Client
	sesOnce   sync.Once
)

func clienteSES() *ses.Client {
	sesOnce.Do(func() {
		cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			log.Printf("Erro ao carregar config AWS para SES: %v", err)
			return
		}
		sesClient = ses.NewFromConfig(cfg)
	})
	return sesClient
}

// EnviarResumoPorEmail manda o resumo do painel de alertas para o e-mail
// informado, agrupado por severidade.
func EnviarResumoPorEmail(destinatario string, alertas []alerta.Alerta) error {
	client := clienteSES()
	if client == nil {
		return fmt.Errorf("cliente SES indisponível")
	}

	assunto := fmt.Sprintf("Painel de alertas: %d pendências", len(alertas))
	corpo := montarCorpoResumo(alertas)

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{destinatario},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(assunto),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(corpo),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	if _, err := client.SendEmail(context.TODO(), input); err != nil {
		log.Printf("Erro ao enviar resumo por e-mail: %v", err)
		return fmt.Errorf("falha no envio do e-mail: %w", err)
	}
	return nil
}

// EnviarSenhaTemporaria manda a senha temporária de acesso ao painel
// para o e-mail do usuário. A senha só trafega por aqui, nunca na
// resposta HTTP.
func EnviarSenhaTemporaria(destinatario, senha string) error {
	client := clienteSES()
	if client == nil {
		return fmt.Errorf("cliente SES indisponível")
	}

	corpo := fmt.Sprintf(
		"Sua senha temporária de acesso ao painel é: %s\n\nEla precisa ser trocada no primeiro login.", senha)

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{destinatario},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String("Redefinição de senha do painel"),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(corpo),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	if _, err := client.SendEmail(context.TODO(), input); err != nil {
		log.Printf("Erro ao enviar senha temporária por e-mail: %v", err)
		return fmt.Errorf("falha no envio do e-mail: %w", err)
	}
	return nil
}

func montarCorpoResumo(alertas []alerta.Alerta) string {
	var b strings.Builder
	b.WriteString("Resumo do painel de alertas:\n\n")

	totais := map[string]int{}
	for _, a := range alertas {
		totais[a.Classificacao.Label]++
	}
	for _, label := range []string{"Vencido", "Urgente", "Atenção", "Aviso", "Em dia"} {
		if totais[label] > 0 {
			fmt.Fprintf(&b, "%s: %d\n", label, totais[label])
		}
	}

	b.WriteString("\n")
	for _, a := range alertas {
		fmt.Fprintf(&b, "[%s] %s - %s (%s)\n",
			a.Classificacao.Label, a.Categoria, a.Mensagem, a.Data.Format("02/01/2006"))
	}
	return b.String()
}
