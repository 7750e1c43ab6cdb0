package v1

import (
	"github.com/shenikar/safety_scoring_system/internal/models"
	"github.com/shenikar/safety_scoring_system/internal/scoring"
)

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		IncidentType: models.IncidentType(dto.IncidentType),
		Severity:     models.Severity(dto.Severity),
		Description:  dto.Description,
		Images:       dto.Images,
		Coordinates:  DTOToGeometry(dto.Coordinates),
	}
}

// DTOToRegionModel преобразует DTO создания региона в доменную модель
func DTOToRegionModel(dto CreateRegionRequest) *models.Region {
	region := &models.Region{
		Name:        dto.Name,
		Coordinates: DTOToGeometry(dto.Coordinates),
	}
	if dto.ClusterFactor != nil {
		region.ClusterFactor = *dto.ClusterFactor
	}
	return region
}

// DTOToAuditParams преобразует DTO аудита в параметры алгоритма
func DTOToAuditParams(dto AuditRequest) scoring.AuditParams {
	return scoring.AuditParams{
		Lighting:           dto.Lighting,
		Visibility:         dto.Visibility,
		CrowdActivity:      dto.CrowdActivity,
		Walkpath:           dto.Walkpath,
		TransportAccess:    dto.TransportAccess,
		CCTVPolicePresence: dto.CCTVPolicePresence,
	}
}

func DTOToGeometry(dto GeometryDTO) models.Geometry {
	return models.Geometry{Type: dto.Type, Coordinates: dto.Coordinates}
}

func GeometryToDTO(g models.Geometry) GeometryDTO {
	return GeometryDTO{Type: g.Type, Coordinates: g.Coordinates}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	images := model.Images
	if images == nil {
		images = []string{}
	}
	resp := &IncidentResponse{
		ID:              model.ID,
		ReporterID:      model.ReporterID,
		IncidentType:    string(model.IncidentType),
		Severity:        string(model.Severity),
		Description:     model.Description,
		Images:          images,
		Coordinates:     GeometryToDTO(model.Coordinates),
		Status:          string(model.Status),
		AdminValidation: ValidationResponse(model.AdminValidation),
		NGOValidation:   ValidationResponse(model.NGOValidation),
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
	if model.Derived != nil {
		resp.Score = ModelToScoreResponse(model.Derived)
	}
	if len(model.Audits) > 0 {
		resp.Audits = make([]AuditResponse, len(model.Audits))
		for i := range model.Audits {
			resp.Audits[i] = *ModelToAuditResponse(&model.Audits[i])
		}
	}
	resp.Comments = ModelsToCommentResponses(model.Comments)
	return resp
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func ModelToScoreResponse(score *models.DerivedScore) *ScoreResponse {
	return &ScoreResponse{
		InitialWeight:       score.InitialWeight,
		TimeDecayFactor:     score.TimeDecayFactor,
		EffectiveMultiplier: score.EffectiveMultiplier,
		ContributionScore:   score.ContributionScore,
		EvaluatedAt:         score.EvaluatedAt,
	}
}

func ModelToAuditResponse(audit *models.Audit) *AuditResponse {
	return &AuditResponse{
		ID:          audit.ID,
		IncidentID:  audit.IncidentID,
		AuditorID:   audit.AuditorID,
		AuditorRole: string(audit.AuditorRole),
		SEnv:        audit.SEnv,
		RiskLevel:   string(audit.RiskLevel),
		Notes:       audit.Notes,
		CreatedAt:   audit.CreatedAt,
	}
}

func ModelToCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        comment.ID,
		AuthorID:  comment.AuthorID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}

func ModelsToCommentResponses(comments []models.Comment) []CommentResponse {
	if len(comments) == 0 {
		return nil
	}
	responses := make([]CommentResponse, len(comments))
	for i := range comments {
		responses[i] = *ModelToCommentResponse(&comments[i])
	}
	return responses
}

// ModelToRegionResponse преобразует регион в DTO; display_score округлен до десятых
func ModelToRegionResponse(model *models.Region) *RegionResponse {
	types := make(map[string]int, len(model.IncidentTypes))
	for t, n := range model.IncidentTypes {
		types[string(t)] = n
	}
	return &RegionResponse{
		ID:                model.ID,
		Name:              model.Name,
		Coordinates:       GeometryToDTO(model.Coordinates),
		ClusterFactor:     model.ClusterFactor,
		SafetyScore:       model.SafetyScore,
		DisplayScore:      scoring.RoundScore(model.SafetyScore),
		RiskSum:           model.RiskSum,
		IncidentCount:     model.IncidentCount,
		AverageSeverity:   string(model.AverageSeverity),
		HighSeverityCount: model.HighSeverityCount,
		IncidentTypes:     types,
		ScoredAt:          model.ScoredAt,
		Comments:          ModelsToCommentResponses(model.Comments),
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ModelsToRegionResponses(models []*models.Region) []*RegionResponse {
	responses := make([]*RegionResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToRegionResponse(model)
	}
	return responses
}
