package ethereum_test

import (
	"context"

	"carecoin/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MockDeployer", func() {
	var (
		deployer *ethereum.MockDeployer
		ctx      context.Context
	)

	BeforeEach(func() {
		deployer = ethereum.NewMockDeployer()
		ctx = context.Background()
	})

	Describe("MockContractAddress", func() {
		It("should derive the known address for network 31", func() {
			Expect(ethereum.MockContractAddress(31, ethereum.CareTokenContract)).
				To(Equal("0x565f1ef47dfa60859b1347c870ed5cfdeb4b8c57"))
			Expect(ethereum.MockContractAddress(31, ethereum.CareReceiptContract)).
				To(Equal("0xd7c6b320e94b3417a880afc05707e7509b75725a"))
			Expect(ethereum.MockContractAddress(1, ethereum.CareTokenContract)).
				To(Equal("0x22de85afcd0fb4f51decaae2f64b424488a1468e"))
		})

		It("should match the keccak256 of the seed", func() {
			hash := crypto.Keccak256Hash([]byte("1337-carereceipt-kindnesscoin"))
			expected := common.BytesToAddress(hash.Bytes()[:common.AddressLength]).Hex()

			address := ethereum.MockContractAddress(1337, ethereum.CareReceiptContract)
			Expect(common.HexToAddress(address).Hex()).To(Equal(expected))
			Expect(address).To(HaveLen(42))
			Expect(address).To(MatchRegexp(`^0x[0-9a-f]{40}$`))
		})
	})

	Describe("DeployCareToken", func() {
		It("should be deterministic per network", func() {
			first, err := deployer.DeployCareToken(ctx, 31)
			Expect(err).NotTo(HaveOccurred())
			second, err := deployer.DeployCareToken(ctx, 31)
			Expect(err).NotTo(HaveOccurred())
			Expect(first).To(Equal(second))

			other, err := deployer.DeployCareToken(ctx, 30)
			Expect(err).NotTo(HaveOccurred())
			Expect(other).NotTo(Equal(first))
		})

		It("should fail when the context is cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := deployer.DeployCareToken(cancelled, 31)
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Describe("DeployCareReceipt", func() {
		It("should differ from the token address", func() {
			token, err := deployer.DeployCareToken(ctx, 31)
			Expect(err).NotTo(HaveOccurred())
			receipt, err := deployer.DeployCareReceipt(ctx, 31)
			Expect(err).NotTo(HaveOccurred())
			Expect(receipt).NotTo(Equal(token))
		})
	})

	Describe("Deploy", func() {
		It("should return both contract addresses", func() {
			deployment, err := deployer.Deploy(ctx, 31)
			Expect(err).NotTo(HaveOccurred())
			Expect(deployment.NetworkID).To(Equal(int64(31)))
			Expect(deployment.CareTokenAddress).To(Equal(ethereum.MockContractAddress(31, ethereum.CareTokenContract)))
			Expect(deployment.CareReceiptAddress).To(Equal(ethereum.MockContractAddress(31, ethereum.CareReceiptContract)))
		})

		It("should agree with the single contract deployments", func() {
			token, err := deployer.DeployCareToken(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			receipt, err := deployer.DeployCareReceipt(ctx, 1)
			Expect(err).NotTo(HaveOccurred())

			deployment, err := deployer.Deploy(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(deployment.CareTokenAddress).To(Equal(token))
			Expect(deployment.CareReceiptAddress).To(Equal(receipt))
		})

		It("should join the errors of both contracts", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			deployment, err := deployer.Deploy(cancelled, 31)
			Expect(deployment).To(BeNil())
			Expect(err).To(MatchError(context.Canceled))
			Expect(err).To(MatchError(ContainSubstring("deploying caretoken on network 31")))
			Expect(err).To(MatchError(ContainSubstring("deploying carereceipt on network 31")))
		})
	})
})
