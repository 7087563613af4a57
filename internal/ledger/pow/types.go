package pow

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	MinerMetrics interface {
		ObserveSearch(err error, difficulty uint32, attempts uint64, started time.Time)
	}
)
