package services

import (
	"context"
	"fmt"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

// decimalEq matches a decimal.Decimal by value rather than representation.
type decimalEq struct {
	want decimal.Decimal
}

func (m decimalEq) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string {
	return fmt.Sprintf("is decimal %s", m.want)
}

func eqDec(s string) gomock.Matcher {
	return decimalEq{want: decimal.RequireFromString(s)}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// passthroughTx makes a MockTxRunner run fn directly, as if inside a transaction.
func passthroughTx(ctrl *gomock.Controller) *MockTxRunner {
	tx := NewMockTxRunner(ctrl)
	tx.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	return tx
}
