package ethereum

const (
	CareTokenContract   = "caretoken"
	CareReceiptContract = "carereceipt"
)

type DeployResult struct {
	Contract string
	Address  string
	Error    error
}

type Deployment struct {
	NetworkID          int64
	CareTokenAddress   string
	CareReceiptAddress string
}
