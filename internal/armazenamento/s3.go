package armazenamento

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"mime"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var s3Client *s3.Client

// InitS3 inicializa o cliente S3 usado para anexos e documentos.
func InitS3() {
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		log.Fatalf("Erro ao carregar config AWS para S3: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
}

// UploadBase64 recebe um data-URL ("data:<mime>;base64,<dados>"), envia o
// arquivo para o bucket e retorna a URL pública. A pasta separa os anexos
// por domínio (documentos, notas, fotos-obra...).
func UploadBase64(dataURL, pasta string) (string, error) {
	partes := strings.Split(dataURL, ",")
	if len(partes) != 2 {
		return "", fmt.Errorf("arquivo base64 inválido")
	}
	meta := partes[0]
	dados := partes[1]

	mediaType := strings.SplitN(meta, ":", 2)
	if len(mediaType) != 2 {
		return "", fmt.Errorf("arquivo base64 inválido")
	}
	contentType := strings.SplitN(mediaType[1], ";", 2)[0]

	ext := extensaoPara(contentType)

	conteudo, err := base64.StdEncoding.DecodeString(dados)
	if err != nil {
		return "", fmt.Errorf("erro ao decodificar arquivo: %w", err)
	}

	key := fmt.Sprintf("%s/%s%s", pasta, uuid.NewString(), ext)

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(conteudo),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("erro ao enviar para o S3: %w", err)
	}

	cfURL := os.Getenv("CLOUDFRONT_URL")
	return fmt.Sprintf("%s/%s", cfURL, key), nil
}

func extensaoPara(contentType string) string {
	switch contentType {
	case "application/pdf":
		return ".pdf"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	partes := strings.SplitN(contentType, "/", 2)
	if len(partes) == 2 {
		return "." + partes[1]
	}
	return ""
}
