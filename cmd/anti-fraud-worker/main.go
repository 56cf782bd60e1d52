package main

import "anti-fraud-system/internal/bootstrap/worker"

func main() { worker.StartAntiFraudWorker() }
