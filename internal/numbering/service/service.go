// Package service composes the validation engine with the cosmetic region
// directory and optional response decorations.
package service

import (
	"context"
	"errors"

	"phonecheck_backend/internal/numbering/engine"
	"phonecheck_backend/internal/numbering/transport"
	"phonecheck_backend/platform/apperr"
	"phonecheck_backend/platform/logger"
)

// Service is the numbering module's application service.
type Service struct {
	eng      *engine.Engine
	dir      *Directory
	carriers CarrierEstimator // nil disables the decoration
	log      *logger.Logger
}

// New creates the service. The carrier estimator is optional.
func New(eng *engine.Engine, dir *Directory, log *logger.Logger) *Service {
	return &Service{eng: eng, dir: dir, log: log}
}

// SetCarrierEstimator enables the cosmetic estimated-carrier decoration.
func (s *Service) SetCarrierEstimator(est CarrierEstimator) {
	s.carriers = est
}

// Validate runs the engine over raw input and shapes the HTTP response.
// Invalid numbers are successful responses; only empty or unresolvable
// input becomes a typed error.
func (s *Service) Validate(ctx context.Context, req transport.ValidateRequest) (*transport.ValidateResponse, error) {
	result, err := s.eng.Validate(req.Number, req.DefaultRegion)
	if err != nil {
		return nil, mapEngineError(err)
	}

	num := result.Number
	s.log.WithContext(ctx).ValidationEvent(len(req.Number), num.RegionCode, num.CountryCallingCode, num.Valid)

	resp := &transport.ValidateResponse{
		Valid:                     num.Valid,
		CountryCallingCode:        num.CountryCallingCode,
		RegionCode:                num.RegionCode,
		NationalSignificantNumber: num.NationalSignificantNumber,
		NumberType:                string(num.Type),
		NationalFormat:            result.National,
		InternationalFormat:       result.International,
	}
	if num.Valid {
		resp.RegionName = s.dir.Name(num.RegionCode)
		if s.carriers != nil {
			if name, ok := s.carriers.Estimate(num.RegionCode); ok {
				resp.EstimatedCarrier = &transport.CarrierHint{Name: name, Estimated: true}
			}
		}
	}
	return resp, nil
}

// ListRegions enumerates the numbering plan in stable order, merged with
// the directory's display names and example numbers.
func (s *Service) ListRegions(ctx context.Context) *transport.RegionsResponse {
	regions := s.eng.Store().Regions()
	out := &transport.RegionsResponse{Regions: make([]transport.RegionInfo, 0, len(regions))}
	for _, r := range regions {
		out.Regions = append(out.Regions, transport.RegionInfo{
			Code:               r.Code,
			Name:               s.dir.Name(r.Code),
			CountryCallingCode: r.CallingCode,
			MainForCode:        r.MainForCode,
			PossibleLengths:    r.PossibleLengths(),
			ExampleNumbers:     s.dir.Examples(r.Code),
		})
	}
	return out
}

func mapEngineError(err error) error {
	switch {
	case errors.Is(err, engine.ErrEmptyInput):
		return apperr.Wrap(apperr.KindBadRequest, "phone number is empty", err)
	case errors.Is(err, engine.ErrAmbiguousRegion):
		return apperr.Wrap(apperr.KindValidation, "region cannot be determined", err).
			WithDetails("include a + country code prefix or supply default_region")
	default:
		return apperr.Wrap(apperr.KindInternal, "validation failed", err)
	}
}
