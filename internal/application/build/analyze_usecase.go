package build

import (
	"context"

	"github.com/sayandip-ghosh/stock-management/internal/application/dto"
	"github.com/sayandip-ghosh/stock-management/internal/domain"
	"github.com/sayandip-ghosh/stock-management/internal/domain/buildability"
	"github.com/sayandip-ghosh/stock-management/internal/domain/repository"
	"github.com/sayandip-ghosh/stock-management/pkg/logger"
)

// AnalyzeUseCase read-only buildability calculations: single-assembly
// availability and whole-batch contention analysis. Works on a point-in-time
// stock snapshot; only Execute (BuildUseCase) takes locks.
type AnalyzeUseCase struct {
	partRepo     repository.PartRepository
	assemblyRepo repository.AssemblyRepository
	log          *logger.Logger
}

// NewAnalyzeUseCase builds the use case.
func NewAnalyzeUseCase(partRepo repository.PartRepository, assemblyRepo repository.AssemblyRepository, log *logger.Logger) *AnalyzeUseCase {
	return &AnalyzeUseCase{partRepo: partRepo, assemblyRepo: assemblyRepo, log: log}
}

// Buildability answers "can I build N units of this assembly right now" with
// per-BOM-line detail plus the maximum buildable from current stock.
func (uc *AnalyzeUseCase) Buildability(ctx context.Context, assemblyID string, quantity int64) (*dto.BuildabilityResponse, error) {
	assembly, err := uc.assemblyRepo.GetByID(ctx, assemblyID)
	if err != nil {
		return nil, err
	}
	if assembly == nil {
		return nil, domain.ErrNotFound
	}
	parts, err := uc.partRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	idx := buildability.NewPartIndex(parts)

	if quantity < 1 {
		quantity = 1
	}
	resp := &dto.BuildabilityResponse{
		AssemblyID:   assembly.ID,
		Quantity:     quantity,
		MaxBuildable: buildability.MaxBuildable(assembly, idx),
		CanBuild:     true,
		Lines:        make([]dto.LineAvailabilityDTO, 0, len(assembly.BOMItems)),
	}
	if len(assembly.BOMItems) == 0 {
		resp.CanBuild = false
	}
	for _, line := range assembly.BOMItems {
		av := buildability.CheckAvailability(line, idx, quantity)
		if !av.CanBuild {
			resp.CanBuild = false
		}
		if av.DataFault {
			uc.log.Warn().
				Str("assembly_id", assembly.ID).
				Str("part_id", av.PartID).
				Msg("BOM line with unresolved part or non-positive quantity, treated as unavailable")
		}
		lineDTO := dto.LineAvailabilityDTO{
			PartID:    av.PartID,
			Required:  av.Required,
			Available: av.Available,
			CanBuild:  av.CanBuild,
			Shortage:  av.Shortage,
			DataFault: av.DataFault,
		}
		if part := idx.Resolve(line); part != nil {
			lineDTO.PartNumber = part.PartNumber
		}
		resp.Lines = append(resp.Lines, lineDTO)
	}
	return resp, nil
}

// AnalyzeBatch runs the shared-stock contention analysis for a selection of
// assemblies built together.
func (uc *AnalyzeUseCase) AnalyzeBatch(ctx context.Context, in dto.BatchAnalyzeRequest) (*dto.BatchAnalyzeResponse, error) {
	requests, err := uc.loadRequests(ctx, in.Items)
	if err != nil {
		return nil, err
	}
	parts, err := uc.partRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	analysis := buildability.AnalyzeBatch(requests, buildability.NewPartIndex(parts))
	uc.log.Debug().
		Int("assemblies", analysis.TotalAssemblies).
		Int("part_types", analysis.TotalPartTypes).
		Bool("can_build_all", analysis.CanBuildAll).
		Msg("batch analysis done")
	return toBatchAnalyzeResponse(analysis), nil
}

// loadRequests resolves the requested assembly ids in one round trip. Every
// id must resolve; a dangling id fails the whole request.
func (uc *AnalyzeUseCase) loadRequests(ctx context.Context, items []dto.BatchBuildItem) ([]buildability.BuildRequest, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		ids = append(ids, item.AssemblyID)
	}
	assemblies, err := uc.assemblyRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]int, len(assemblies))
	for i, a := range assemblies {
		byID[a.ID] = i
	}
	requests := make([]buildability.BuildRequest, 0, len(items))
	for _, item := range items {
		i, ok := byID[item.AssemblyID]
		if !ok {
			return nil, domain.ErrNotFound
		}
		requests = append(requests, buildability.BuildRequest{
			Assembly: assemblies[i],
			Quantity: item.Quantity,
		})
	}
	return requests, nil
}

func toBatchAnalyzeResponse(a buildability.BatchAnalysis) *dto.BatchAnalyzeResponse {
	resp := &dto.BatchAnalyzeResponse{
		CanBuildAll:            a.CanBuildAll,
		TotalAssemblies:        a.TotalAssemblies,
		TotalPartTypes:         a.TotalPartTypes,
		GlobalConstraintFactor: a.GlobalConstraintFactor,
	}
	for _, c := range a.PartConstraints {
		resp.PartConstraints = append(resp.PartConstraints, dto.PartConstraintDTO{
			PartID:        c.PartID,
			PartNumber:    c.PartNumber,
			Available:     c.Available,
			TotalRequired: c.TotalRequired,
			Factor:        c.Factor,
		})
	}
	for _, m := range a.MaxBuildablePerAssembly {
		resp.MaxBuildablePerAssembly = append(resp.MaxBuildablePerAssembly, dto.AssemblyMaxDTO{
			AssemblyID:     m.AssemblyID,
			AssemblyNumber: m.AssemblyNumber,
			Requested:      m.Requested,
			AdjustedMax:    m.AdjustedMax,
		})
	}
	for _, p := range a.InsufficientParts {
		row := dto.InsufficientPartDTO{
			PartID:        p.PartID,
			PartNumber:    p.PartNumber,
			Available:     p.Available,
			TotalRequired: p.TotalRequired,
			Shortage:      p.Shortage,
		}
		for _, d := range p.DrawnBy {
			row.DrawnBy = append(row.DrawnBy, dto.AssemblyDrawDTO{
				AssemblyID:     d.AssemblyID,
				AssemblyNumber: d.AssemblyNumber,
				QuantityNeeded: d.QuantityNeeded,
			})
		}
		resp.InsufficientParts = append(resp.InsufficientParts, row)
	}
	return resp
}
