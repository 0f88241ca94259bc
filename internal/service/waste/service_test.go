package waste

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/domain"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/domain/dto"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCompanyID = uuid.MustParse("6f1f64a2-98a5-4a3c-9f6e-0d9c1f6fb11a")

type fakeStore struct {
	logs    map[domain.Year][]*domain.WasteLog
	listErr map[domain.Year]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		logs:    make(map[domain.Year][]*domain.WasteLog),
		listErr: make(map[domain.Year]error),
	}
}

func (f *fakeStore) ListWasteLogs(_ context.Context, opts store.ListWasteLogsOpts) ([]*domain.WasteLog, error) {
	if err := f.listErr[opts.Year]; err != nil {
		return nil, err
	}

	logs := make([]*domain.WasteLog, 0)
	for _, l := range f.logs[opts.Year] {
		if l.CompanyID != opts.CompanyID {
			continue
		}
		if len(opts.TreatmentILike) > 0 && !matchesAny(l.FinalTreatmentType, opts.TreatmentILike) {
			continue
		}
		logs = append(logs, l)
	}
	return logs, nil
}

func matchesAny(value string, substrings []string) bool {
	norm := strings.ToLower(value)
	for _, s := range substrings {
		if strings.Contains(norm, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

func (f *fakeStore) GetProfileByUserID(context.Context, uuid.UUID) (*domain.Profile, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStore) UpsertLegislation(context.Context, *dto.LegislationDto) (*domain.Legislation, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStore) ListLegislations(context.Context, store.ListLegislationsOpts) ([]*domain.Legislation, error) {
	return nil, errors.New("not implemented")
}

func newLog(year domain.Year, quantity float64, unit, description, class, treatment string) *domain.WasteLog {
	return &domain.WasteLog{
		ID:                 uuid.New(),
		CompanyID:          testCompanyID,
		Quantity:           quantity,
		Unit:               unit,
		WasteDescription:   description,
		WasteClass:         class,
		FinalTreatmentType: treatment,
		CollectionDate:     time.Date(year, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestTotalGenerationScenario(t *testing.T) {
	st := newFakeStore()
	st.logs[2024] = []*domain.WasteLog{
		newLog(2024, 1000, "kg", "Rejeito comum", "Classe II", "Aterro"),
		newLog(2024, 2, "t", "Papelão", "Classe II", "Reciclagem"),
	}
	svc := NewService(st)

	res, err := svc.TotalGeneration(context.Background(), testCompanyID, 2024)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, res.TotalGeneratedTonnes, 1e-9)
	assert.InDelta(t, 1.0, res.ByTreatment.Landfill.Tonnes, 1e-9)
	assert.InDelta(t, 33.33, res.ByTreatment.Landfill.Percentage, 1e-9)
	assert.InDelta(t, 2.0, res.ByTreatment.Recycling.Tonnes, 1e-9)
	assert.InDelta(t, 66.67, res.ByTreatment.Recycling.Percentage, 1e-9)
	assert.Equal(t, 2, res.RecordCount)
	assert.Nil(t, res.Comparison)
}

func TestTotalGenerationEmptyYear(t *testing.T) {
	svc := NewService(newFakeStore())

	res, err := svc.TotalGeneration(context.Background(), testCompanyID, 2024)
	require.NoError(t, err)

	assert.Zero(t, res.TotalGeneratedTonnes)
	assert.Zero(t, res.HazardousTonnes)
	assert.Zero(t, res.NonHazardousTonnes)
	assert.Zero(t, res.HazardousPercentage)
	assert.Zero(t, res.ByTreatment.Landfill.Percentage)
	assert.Zero(t, res.ByTreatment.Recycling.Percentage)
	assert.Nil(t, res.Comparison)
}

func TestTotalGenerationUnknownUnitKeepsQuantity(t *testing.T) {
	st := newFakeStore()
	st.logs[2024] = []*domain.WasteLog{
		newLog(2024, 5, "barris", "Borra oleosa", "Classe I", "Aterro"),
	}
	svc := NewService(st)

	res, err := svc.TotalGeneration(context.Background(), testCompanyID, 2024)
	require.NoError(t, err)

	assert.InDelta(t, 5.0, res.TotalGeneratedTonnes, 1e-9)
}

func TestTotalGenerationInvariants(t *testing.T) {
	st := newFakeStore()
	st.logs[2024] = []*domain.WasteLog{
		newLog(2024, 1234, "kg", "Borra oleosa", "Classe I", "Incineração"),
		newLog(2024, 0.75, "t", "Papelão", "Classe II", "Reciclagem"),
		newLog(2024, 333, "l", "Efluente", "perigoso", "Aterro"),
		newLog(2024, 2, "m3", "Restos de poda", "Classe II", "Compostagem"),
		newLog(2024, 150, "kg", "Lodo", "Classe II-A", "Coprocessamento"),
	}
	svc := NewService(st)

	res, err := svc.TotalGeneration(context.Background(), testCompanyID, 2024)
	require.NoError(t, err)

	assert.InDelta(t, res.TotalGeneratedTonnes, res.HazardousTonnes+res.NonHazardousTonnes, 0.001)

	b := res.ByTreatment
	bucketSum := b.Recycling.Tonnes + b.Landfill.Tonnes + b.Incineration.Tonnes + b.Composting.Tonnes + b.Other.Tonnes
	assert.InDelta(t, res.TotalGeneratedTonnes, bucketSum, 0.001)
}

func TestTotalGenerationHazardousIndependentOfTreatment(t *testing.T) {
	st := newFakeStore()
	st.logs[2024] = []*domain.WasteLog{
		newLog(2024, 1, "t", "Borra oleosa", "Classe I", "Aterro"),
	}
	svc := NewService(st)

	res, err := svc.TotalGeneration(context.Background(), testCompanyID, 2024)
	require.NoError(t, err)

	// hazardous and landfilled at the same time
	assert.InDelta(t, 1.0, res.HazardousTonnes, 1e-9)
	assert.InDelta(t, 1.0, res.ByTreatment.Landfill.Tonnes, 1e-9)
}

func TestTotalGenerationYearOverYear(t *testing.T) {
	st := newFakeStore()
	st.logs[2024] = []*domain.WasteLog{newLog(2024, 3, "t", "Rejeito", "Classe II", "Aterro")}
	st.logs[2023] = []*domain.WasteLog{newLog(2023, 2, "t", "Rejeito", "Classe II", "Aterro")}
	svc := NewService(st)

	res, err := svc.TotalGeneration(context.Background(), testCompanyID, 2024)
	require.NoError(t, err)

	require.NotNil(t, res.Comparison)
	assert.Equal(t, 2023, res.Comparison.PreviousYear)
	assert.InDelta(t, 2.0, res.Comparison.PreviousValue, 1e-9)
	assert.InDelta(t, 1.0, res.Comparison.ChangeAbsolute, 1e-9)
	assert.InDelta(t, 50.0, res.Comparison.ChangePercentage, 1e-9)
	assert.False(t, res.Comparison.Improving)
}

func TestTotalGenerationPriorYearFailureSwallowed(t *testing.T) {
	st := newFakeStore()
	st.logs[2024] = []*domain.WasteLog{newLog(2024, 1, "t", "Rejeito", "Classe II", "Aterro")}
	st.listErr[2023] = errors.New("connection reset")
	svc := NewService(st)

	res, err := svc.TotalGeneration(context.Background(), testCompanyID, 2024)
	require.NoError(t, err)
	assert.Nil(t, res.Comparison)
}

func TestTotalGenerationCurrentYearFailurePropagates(t *testing.T) {
	st := newFakeStore()
	st.listErr[2024] = errors.New("connection reset")
	svc := NewService(st)

	_, err := svc.TotalGeneration(context.Background(), testCompanyID, 2024)
	require.Error(t, err)
}

func TestTotalGenerationPure(t *testing.T) {
	st := newFakeStore()
	st.logs[2024] = []*domain.WasteLog{
		newLog(2024, 123.456, "kg", "Rejeito", "Classe I", "Aterro"),
		newLog(2024, 0.789, "t", "Papelão", "Classe II", "Reciclagem"),
	}
	st.logs[2023] = []*domain.WasteLog{newLog(2023, 1, "t", "Rejeito", "Classe II", "Aterro")}
	svc := NewService(st)

	first, err := svc.TotalGeneration(context.Background(), testCompanyID, 2024)
	require.NoError(t, err)
	second, err := svc.TotalGeneration(context.Background(), testCompanyID, 2024)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTotalGenerationTenantScoped(t *testing.T) {
	st := newFakeStore()
	other := *newLog(2024, 10, "t", "Rejeito", "Classe II", "Aterro")
	other.CompanyID = uuid.New()
	st.logs[2024] = []*domain.WasteLog{&other, newLog(2024, 1, "t", "Rejeito", "Classe II", "Aterro")}
	svc := NewService(st)

	res, err := svc.TotalGeneration(context.Background(), testCompanyID, 2024)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.TotalGeneratedTonnes, 1e-9)
}
