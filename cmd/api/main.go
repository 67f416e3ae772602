package main

import (
	"log"

	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/config"
	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/flow"
	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/handler"
	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/predictor"
	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/session"
	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/storage"
)

func main() {
	cfg := config.Load()

	storage.InitDB(cfg.DBPath)

	ctrl := flow.NewController(
		storage.CredentialStore{},
		predictor.NewClient(cfg.PredictorURL),
		cfg.AdminPassphrase,
	)
	registry := session.NewRegistry()
	h := handler.New(registry, ctrl, storage.EstimateStore{})

	router := handler.Routes(h, registry)
	log.Fatal(router.Run(cfg.Addr))
}
