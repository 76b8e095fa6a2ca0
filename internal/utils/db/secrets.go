package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type credenciais struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// obterCredenciais usa DB_USERNAME/DB_PASSWORD quando definidos; caso
// contrário busca o segredo no Secrets Manager (ambiente hospedado).
func obterCredenciais(secretID string) (string, string, error) {
	username := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	if username != "" && password != "" {
		return username, password, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return "", "", fmt.Errorf("erro ao carregar config AWS: %w", err)
	}
	secrets := secretsmanager.NewFromConfig(cfg)

	input := &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	}
	result, err := secrets.GetSecretValue(context.TODO(), input)
	if err != nil {
		return "", "", fmt.Errorf("erro ao buscar segredo %q: %w", secretID, err)
	}

	var secret credenciais
	if err := json.Unmarshal([]byte(*result.SecretString), &secret); err != nil {
		return "", "", fmt.Errorf("segredo %q com formato inválido: %w", secretID, err)
	}

	return secret.Username, secret.Password, nil
}
