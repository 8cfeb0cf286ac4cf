// internal/config/config.go
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Config reúne as variáveis de ambiente exigidas pelos scripts. A construção
// é explícita: cada comando chama Load no início e repassa o resultado.
type Config struct {
	BaseURL   string
	AuthToken string
}

// Load carrega o arquivo .env (quando existir) e valida as variáveis
// obrigatórias. BASE_URL ausente ou vazia é erro fatal antes de qualquer
// processamento.
func Load() (*Config, error) {
	loadEnvFile(".env")

	baseURL := strings.TrimSpace(os.Getenv("BASE_URL"))
	if baseURL == "" {
		return nil, fmt.Errorf("variável de ambiente BASE_URL não está configurada (defina no arquivo .env)")
	}

	return &Config{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		AuthToken: strings.TrimSpace(os.Getenv("AUTH_TOKEN")),
	}, nil
}

// loadEnvFile lê um arquivo .env simples (KEY=VALUE por linha) sem
// sobrescrever variáveis já presentes no ambiente.
func loadEnvFile(path string) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)

		if _, exists := os.LookupEnv(key); !exists {
			os.Setenv(key, value)
		}
	}
}
