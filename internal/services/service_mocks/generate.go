// Package service_mocks holds generated mocks for the services package.
package service_mocks

//go:generate mockgen -source=../interfaces.go -destination=service_mocks.go -package=service_mocks
