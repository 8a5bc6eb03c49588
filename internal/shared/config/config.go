package config

import (
	"os"

	"github.com/gmeireles/casino-actions-poc/pkg/contracts/topics"
)

// Config centraliza variáveis de ambiente e parâmetros de execução dos serviços.
// Tudo que toca rede (RPC, fee API, Kafka, Redis) entra por aqui.
type Config struct {
	Env         string // "local", "dev", "prod"
	ServiceName string // ex: "actions-service", "casino-simulator"

	// Carteira/chain
	RPCURL     string // endpoint JSON-RPC do nó EVM
	PrivateKey string // chave hex (sem 0x) usada pra assinar as apostas

	// Colaboradores externos
	VRFFeeAPIURL   string // API HTTP de estimativa do custo de VRF
	SubgraphAPIKey string // chave opcional do indexador
	DappBaseURL    string // base das URLs de exibição das apostas

	// Infra
	KafkaBrokers string // "a:9092,b:9092"
	RedisAddr    string // vazio desliga o cache de apostas resolvidas

	// Tópicos
	TopicBetPlaced   string
	TopicBetResolved string

	// Portas do serviço atual
	HTTPPort    string // API pública
	MetricsPort string // exclusiva para /metrics e /healthz
}

// Load carrega variáveis de ambiente e define defaults para cada serviço.
func Load() Config {
	svc := getEnv("SERVICE_NAME", "actions-service")
	env := getEnv("ENV", "local")

	cfg := Config{
		Env:         env,
		ServiceName: svc,

		RPCURL:     getEnv("RPC_URL", "http://localhost:8545"),
		PrivateKey: getEnv("PRIVATE_KEY", ""),

		VRFFeeAPIURL:   getEnv("VRF_FEE_API_URL", "http://localhost:8091"),
		SubgraphAPIKey: getEnv("SUBGRAPH_API_KEY", ""),
		DappBaseURL:    getEnv("DAPP_BASE_URL", "https://app.casino.local"),

		KafkaBrokers: getEnv("KAFKA_BROKERS", "localhost:9092"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),

		TopicBetPlaced:   getEnv("KAFKA_TOPIC_BET_PLACED", topics.CasinoBetPlaced),
		TopicBetResolved: getEnv("KAFKA_TOPIC_BET_RESOLVED", topics.CasinoBetResolved),
	}

	// Portas padrão por serviço
	switch svc {
	case "casino-simulator":
		cfg.HTTPPort = getEnv("HTTP_PORT_SIMULATOR", "8091")
		cfg.MetricsPort = getEnv("METRICS_PORT_SIMULATOR", "9094")
	default: // actions-service
		cfg.HTTPPort = getEnv("HTTP_PORT", "8080")
		cfg.MetricsPort = getEnv("METRICS_PORT", "9095")
	}

	return cfg
}

// getEnv retorna o valor da variável de ambiente ou o default
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
