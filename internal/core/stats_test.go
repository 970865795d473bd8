package core_test

import (
	"context"
	"errors"
	"time"

	"carecoin/internal/core"
	"carecoin/internal/core/fake"
	"carecoin/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Stats", func() {
	DescribeTable("KindnessScore",
		func(sent, received, expected int) {
			Expect(core.KindnessScore(sent, received)).To(Equal(expected))
		},
		Entry("no activity", 0, 0, 0),
		Entry("sent only", 3, 0, 30),
		Entry("received only", 0, 2, 30),
		Entry("mixed", 2, 2, 50),
		Entry("capped", 8, 3, 100),
	)

	DescribeTable("KindnessLevel",
		func(score int, level, badge string) {
			gotLevel, gotBadge := core.KindnessLevel(score)
			Expect(gotLevel).To(Equal(level))
			Expect(gotBadge).To(Equal(badge))
		},
		Entry("zero", 0, "New Friend", "👋"),
		Entry("below kind soul", 19, "New Friend", "👋"),
		Entry("kind soul", 20, "Kind Soul", "🌱"),
		Entry("care giver", 40, "Care Giver", "💝"),
		Entry("heart warrior", 79, "Heart Warrior", "⭐"),
		Entry("champion", 80, "Kindness Champion", "🏆"),
		Entry("max", 100, "Kindness Champion", "🏆"),
	)

	Describe("GetStats", func() {
		var (
			fakeRepo *fake.Repository
			service  *core.CareService
			ctx      context.Context
			now      time.Time
			realNow  func() time.Time
		)

		BeforeEach(func() {
			fakeRepo = new(fake.Repository)
			service = core.NewCareService(zap.NewNop().Sugar(), fakeRepo, new(fake.ContractDeployer))
			ctx = context.Background()

			now = time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
			realNow = core.TimeNow
			core.TimeNow = func() time.Time { return now }
		})

		AfterEach(func() {
			core.TimeNow = realNow
		})

		It("should summarize sent and received care", func() {
			fakeRepo.GetCareTokensByAddressReturns([]repository.CareToken{
				{CreatedAt: now.Add(-time.Hour)},
				{CreatedAt: now.Add(-6 * 24 * time.Hour)},
				{CreatedAt: now.Add(-8 * 24 * time.Hour)},
			}, nil)
			fakeRepo.GetCareReceiptsByAddressReturns([]repository.CareReceipt{
				{CreatedAt: now.Add(-2 * 24 * time.Hour)},
				{CreatedAt: now.Add(-30 * 24 * time.Hour)},
			}, nil)

			stats, err := service.GetStats(ctx, "0xABC")
			Expect(err).NotTo(HaveOccurred())
			Expect(stats).To(Equal(core.Stats{
				TotalSent:      3,
				TotalReceived:  2,
				KindnessScore:  60,
				RecentActivity: 3,
				Level:          "Heart Warrior",
				Badge:          "⭐",
			}))

			_, tokensAddress := fakeRepo.GetCareTokensByAddressArgsForCall(0)
			_, receiptsAddress := fakeRepo.GetCareReceiptsByAddressArgsForCall(0)
			Expect(tokensAddress).To(Equal("0xABC"))
			Expect(receiptsAddress).To(Equal("0xABC"))
		})

		It("should return zeroed stats for an unknown address", func() {
			fakeRepo.GetCareTokensByAddressReturns([]repository.CareToken{}, nil)
			fakeRepo.GetCareReceiptsByAddressReturns([]repository.CareReceipt{}, nil)

			stats, err := service.GetStats(ctx, "0xnobody")
			Expect(err).NotTo(HaveOccurred())
			Expect(stats).To(Equal(core.Stats{Level: "New Friend", Badge: "👋"}))
		})

		It("should fail when the tokens cannot be read", func() {
			fakeErr := errors.New("fake error")
			fakeRepo.GetCareTokensByAddressReturns(nil, fakeErr)

			_, err := service.GetStats(ctx, "0xabc")
			Expect(err).To(MatchError(fakeErr))
			Expect(fakeRepo.GetCareReceiptsByAddressCallCount()).To(BeZero())
		})

		It("should fail when the receipts cannot be read", func() {
			fakeErr := errors.New("fake error")
			fakeRepo.GetCareTokensByAddressReturns([]repository.CareToken{}, nil)
			fakeRepo.GetCareReceiptsByAddressReturns(nil, fakeErr)

			_, err := service.GetStats(ctx, "0xabc")
			Expect(err).To(MatchError(fakeErr))
		})
	})
})
