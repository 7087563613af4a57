package mempool

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveAdd(err error)
		SetSize(size int)
	}
)
