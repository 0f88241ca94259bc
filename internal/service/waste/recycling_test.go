package waste

import (
	"context"
	"testing"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecyclingByMaterial(t *testing.T) {
	st := newFakeStore()
	st.logs[2024] = []*domain.WasteLog{
		newLog(2024, 3, "t", "Papelão ondulado", "Classe II", "Reciclagem"),
		newLog(2024, 2, "t", "Restos de alimento", "Classe II", "Compostagem"),
		newLog(2024, 5, "t", "Rejeito", "Classe II", "Aterro"),
	}
	svc := NewService(st)

	res, err := svc.RecyclingByMaterial(context.Background(), testCompanyID, 2024)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, res.TotalGeneratedTonnes, 1e-9)
	assert.InDelta(t, 5.0, res.TotalRecycledTonnes, 1e-9)
	assert.InDelta(t, 50.0, res.RecyclingPercentage, 1e-9)
	assert.Equal(t, "good", res.MaturityLevel)

	byMaterial := make(map[string]domain.CategoryVolume, len(res.ByMaterial))
	for _, m := range res.ByMaterial {
		byMaterial[m.Category] = m
	}
	assert.InDelta(t, 3.0, byMaterial[MaterialPaperCardboard].Tonnes, 1e-9)
	assert.InDelta(t, 60.0, byMaterial[MaterialPaperCardboard].Percentage, 1e-9)
	assert.InDelta(t, 2.0, byMaterial[MaterialOrganic].Tonnes, 1e-9)
	assert.Zero(t, byMaterial[MaterialGlass].Tonnes)
}

func TestRecyclingMaturityBands(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{80, "excellent"},
		{70, "excellent"},
		{50, "good"},
		{30, "regular"},
		{29.99, "low"},
		{0, "low"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyRecyclingMaturity(tt.pct))
		})
	}
}

func TestRecyclingZeroWasteProgress(t *testing.T) {
	st := newFakeStore()
	// 35% diversion: halfway to the 70% floor
	st.logs[2024] = []*domain.WasteLog{
		newLog(2024, 3.5, "t", "Papelão", "Classe II", "Reciclagem"),
		newLog(2024, 6.5, "t", "Rejeito", "Classe II", "Aterro"),
	}
	svc := NewService(st)

	res, err := svc.RecyclingByMaterial(context.Background(), testCompanyID, 2024)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, res.ZeroWasteProgress, 1e-9)
}

func TestRecyclingZeroWasteProgressCapsAtHundred(t *testing.T) {
	st := newFakeStore()
	st.logs[2024] = []*domain.WasteLog{
		newLog(2024, 9, "t", "Papelão", "Classe II", "Reciclagem"),
		newLog(2024, 1, "t", "Rejeito", "Classe II", "Aterro"),
	}
	svc := NewService(st)

	res, err := svc.RecyclingByMaterial(context.Background(), testCompanyID, 2024)
	require.NoError(t, err)

	assert.InDelta(t, 90.0, res.RecyclingPercentage, 1e-9)
	assert.InDelta(t, 100.0, res.ZeroWasteProgress, 1e-9)
	assert.Equal(t, "excellent", res.MaturityLevel)
}

func TestRecyclingEmptyYear(t *testing.T) {
	svc := NewService(newFakeStore())

	res, err := svc.RecyclingByMaterial(context.Background(), testCompanyID, 2024)
	require.NoError(t, err)

	assert.Zero(t, res.RecyclingPercentage)
	assert.Zero(t, res.ZeroWasteProgress)
	assert.Equal(t, "low", res.MaturityLevel)
	for _, m := range res.ByMaterial {
		assert.Zero(t, m.Tonnes)
		assert.Zero(t, m.Percentage)
	}
}

// Reuse volume counts toward the recycling bucket in the generation
// taxonomy and therefore toward diversion here.
func TestRecyclingIncludesReuseKeywordVolume(t *testing.T) {
	st := newFakeStore()
	st.logs[2024] = []*domain.WasteLog{
		newLog(2024, 1, "t", "Pallets de madeira", "Classe II", "Reuso"),
		newLog(2024, 1, "t", "Rejeito", "Classe II", "Aterro"),
	}
	svc := NewService(st)

	res, err := svc.RecyclingByMaterial(context.Background(), testCompanyID, 2024)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.TotalRecycledTonnes, 1e-9)
	assert.InDelta(t, 50.0, res.RecyclingPercentage, 1e-9)

	byMaterial := make(map[string]domain.CategoryVolume, len(res.ByMaterial))
	for _, m := range res.ByMaterial {
		byMaterial[m.Category] = m
	}
	assert.InDelta(t, 1.0, byMaterial[MaterialWood].Tonnes, 1e-9)
}
