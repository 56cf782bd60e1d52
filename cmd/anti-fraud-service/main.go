package main

import "anti-fraud-system/internal/bootstrap/antifraud"

// @title Anti-Fraud System API
// @version 1.0
// @description Система проверки инвойсов на мошенничество
// @host localhost:8080
// @BasePath /api/v1
func main() { antifraud.StartAntiFraudService() }
