package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"workforce-engine/internal/config"
	"workforce-engine/internal/engine"
	"workforce-engine/internal/handler"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	rules, err := config.LoadRules(cfg.RulesPath)
	if err != nil {
		log.Fatalf("Loading rules failed: %v", err)
	}
	wfCfg, err := rules.Workforce()
	if err != nil {
		log.Fatalf("Invalid workforce rules: %v", err)
	}

	eng, err := engine.New(engine.Config{
		Workforce: wfCfg,
		Workers:   cfg.Workers,
		Log:       log,
	})
	if err != nil {
		log.Fatalf("Engine construction failed: %v", err)
	}

	h := handler.New(eng, log)
	log.Infof("Workforce engine starting on port %s", cfg.Port)
	if err := fasthttp.ListenAndServe(":"+cfg.Port, h.Handle); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
