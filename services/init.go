package services

import "github.com/Leafline-Dispensary/leafline-storefront-backend/config"

var dispenseClient *DispenseClient

// InitDispense wires the shared upstream client. Called once from main
// before any route is served.
func InitDispense(cfg config.DispenseConfig) {
	dispenseClient = NewDispenseClient(cfg)
}

// Dispense returns the shared upstream client.
func Dispense() *DispenseClient {
	return dispenseClient
}
