// Package bankfeed_mocks holds generated mocks for the bankfeed package.
package bankfeed_mocks

//go:generate mockgen -source=../client.go -destination=bankfeed_mocks.go -package=bankfeed_mocks
