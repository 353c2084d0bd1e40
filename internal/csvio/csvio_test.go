package csvio_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/apperrors"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/csvio"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/testutil"
)

func TestWriteThenRead_DemoPortfolio(t *testing.T) {
	demo := testutil.DemoAssets()

	var buf bytes.Buffer
	require.NoError(t, csvio.Write(&buf, demo))

	got, err := csvio.Read(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(demo, got); diff != "" {
		t.Errorf("Read(Write(demo)) mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_HeaderAndOptionalCells(t *testing.T) {
	a := testutil.NewAsset().
		WithName("Banco Caixa (BCGA)").
		WithType(model.AssetTypeEquity).
		WithoutInterestRate().
		Value()

	var buf bytes.Buffer
	require.NoError(t, csvio.Write(&buf, []model.Asset{a}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,name,type,quantity,investedAmount,currentPrice,purchaseDate,maturityDate,interestRate", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], ",2024-01-15,,"), lines[1])
}

func TestRead_AcceptsLabelsAndBlankOptionals(t *testing.T) {
	in := "id,name,type,quantity,investedAmount,currentPrice,purchaseDate,maturityDate,interestRate\n" +
		",BT-91 Dias,Bilhetes do Tesouro (BT),50,450000,9800,2024-03-01,2024-06-01,18\n" +
		",Fundo,INVESTMENT_FUND,1500,1500000,1100,,,\n"

	got, err := csvio.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, model.AssetTypeTreasuryBill, got[0].Type)
	require.NotNil(t, got[0].MaturityDate)
	assert.True(t, got[0].MaturityDate.Equal(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, got[0].InterestRate)
	assert.Equal(t, 18.0, *got[0].InterestRate)

	assert.Nil(t, got[1].MaturityDate)
	assert.Nil(t, got[1].InterestRate)
	assert.True(t, got[1].PurchaseDate.IsZero())
}

func TestRead_Errors(t *testing.T) {
	header := "id,name,type,quantity,investedAmount,currentPrice,purchaseDate,maturityDate,interestRate\n"
	tests := []struct {
		name string
		in   string
	}{
		{"unknown type", header + ",X,CRYPTO,1,1,1,,,\n"},
		{"blank name", header + ",,EQUITY,1,1,1,,,\n"},
		{"bad date", header + ",X,EQUITY,1,1,1,01/02/2024,,\n"},
		{"bad rate", header + ",X,EQUITY,1,1,1,,,abc\n"},
		{"bad number", header + ",X,EQUITY,one,1,1,,,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := csvio.Read(strings.NewReader(tt.in))
			assert.True(t, errors.Is(err, apperrors.ErrInvalidCSV), "got %v", err)
		})
	}
}
