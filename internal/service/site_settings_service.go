package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/voyago/travel-admin-api/internal/models"
	"github.com/voyago/travel-admin-api/internal/store"
	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
	"github.com/voyago/travel-admin-api/pkg/pagination"
)

// CreateEnumGroupRequest is the payload for POST /site-settings/enums.
type CreateEnumGroupRequest struct {
	Name        string                   `json:"name" validate:"required"`
	Description *string                  `json:"description,omitempty"`
	Values      []CreateEnumValuePayload `json:"values" validate:"required,min=1,dive"`
	Metadata    map[string]string        `json:"metadata,omitempty"`
}

// CreateEnumValuePayload is one value inside a new enum group.
type CreateEnumValuePayload struct {
	Key         string  `json:"key" validate:"required"`
	Label       string  `json:"label" validate:"required"`
	Value       string  `json:"value" validate:"required"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// ReorderRequest names entity IDs in their new display order.
type ReorderRequest struct {
	OrderedIDs []string `json:"orderedIds"`
}

// CreatePriceRequest is the payload for POST /site-settings/advertising/prices.
// Price is a pointer so a missing field is distinguishable from zero.
type CreatePriceRequest struct {
	Placement  string   `json:"placement" validate:"required"`
	Price      *float64 `json:"price" validate:"required,gte=0"`
	Currency   string   `json:"currency"`
	PeriodDays int      `json:"periodDays" validate:"gte=0"`
	Active     bool     `json:"active"`
}

// UpsertSocialLinkRequest creates or replaces a social link.
type UpsertSocialLinkRequest struct {
	Platform string `json:"platform" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
	Label    string `json:"label"`
	Active   bool   `json:"active"`
}

// SiteSettingsService fronts the mutable site-settings collections with
// payload validation.
type SiteSettingsService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

func NewSiteSettingsService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *SiteSettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SiteSettingsService{store: st, validator: validate, logger: logger}
}

// PaymentAccounts lists accounts matching the filter, one page at a time.
func (s *SiteSettingsService) PaymentAccounts(ctx context.Context, filter models.PaymentAccountFilter, params pagination.Params) (pagination.Page[models.PaymentAccount], error) {
	return pagination.Paginate(s.store.PaymentAccounts.List(filter), params)
}

// PaymentAccount fetches one account by ID.
func (s *SiteSettingsService) PaymentAccount(ctx context.Context, id string) (*models.PaymentAccount, error) {
	return s.store.PaymentAccounts.FindByID(id)
}

// EnumGroups lists every enum group.
func (s *SiteSettingsService) EnumGroups(ctx context.Context) []models.EnumGroup {
	return s.store.Enums.List()
}

// CreateEnumGroup validates and stores a new enum group.
func (s *SiteSettingsService) CreateEnumGroup(ctx context.Context, req CreateEnumGroupRequest) (models.EnumGroup, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.EnumGroup{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enum group payload")
	}

	values := make([]models.EnumValue, len(req.Values))
	for i, v := range req.Values {
		values[i] = models.EnumValue{
			Key:         v.Key,
			Label:       v.Label,
			Value:       v.Value,
			Description: v.Description,
			Active:      v.Active,
		}
	}

	return s.store.Enums.Create(models.EnumGroup{
		Name:        req.Name,
		Description: req.Description,
		Values:      values,
		Metadata:    req.Metadata,
	})
}

// RemoveEnumValue deletes one value key from a group.
func (s *SiteSettingsService) RemoveEnumValue(ctx context.Context, groupName, valueKey string) (models.EnumGroup, error) {
	return s.store.Enums.RemoveValue(groupName, valueKey)
}

// GuideBanners lists banners in display order.
func (s *SiteSettingsService) GuideBanners(ctx context.Context) []models.GuideBanner {
	return s.store.Banners.List()
}

// ReorderGuideBanners applies a new display order.
func (s *SiteSettingsService) ReorderGuideBanners(ctx context.Context, req ReorderRequest) ([]models.GuideBanner, error) {
	return s.store.Banners.Reorder(req.OrderedIDs)
}

// AdvertisingPrices lists placement prices.
func (s *SiteSettingsService) AdvertisingPrices(ctx context.Context) []models.AdvertisingPrice {
	return s.store.Prices.List()
}

// CreateAdvertisingPrice validates and stores a new placement price.
func (s *SiteSettingsService) CreateAdvertisingPrice(ctx context.Context, req CreatePriceRequest) (models.AdvertisingPrice, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.AdvertisingPrice{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "placement and a numeric price are required")
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	return s.store.Prices.Create(models.AdvertisingPrice{
		Placement:  req.Placement,
		Price:      *req.Price,
		Currency:   currency,
		PeriodDays: req.PeriodDays,
		Active:     req.Active,
	}), nil
}

// UpdateAdvertisingPrice replaces the named price.
func (s *SiteSettingsService) UpdateAdvertisingPrice(ctx context.Context, id string, req CreatePriceRequest) (models.AdvertisingPrice, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.AdvertisingPrice{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "placement and a numeric price are required")
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	return s.store.Prices.Update(id, models.AdvertisingPrice{
		Placement:  req.Placement,
		Price:      *req.Price,
		Currency:   currency,
		PeriodDays: req.PeriodDays,
		Active:     req.Active,
	})
}

// DeleteAdvertisingPrice removes the named price.
func (s *SiteSettingsService) DeleteAdvertisingPrice(ctx context.Context, id string) error {
	if !s.store.Prices.Remove(id) {
		return appErrors.Clone(appErrors.ErrNotFound, "advertising price not found")
	}
	return nil
}

// SocialLinks lists links in display order.
func (s *SiteSettingsService) SocialLinks(ctx context.Context) []models.SocialLink {
	return s.store.SocialLinks.List()
}

// CreateSocialLink validates and stores a new link.
func (s *SiteSettingsService) CreateSocialLink(ctx context.Context, req UpsertSocialLinkRequest) (models.SocialLink, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.SocialLink{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid social link payload")
	}
	return s.store.SocialLinks.Create(models.SocialLink{
		Platform: req.Platform,
		URL:      req.URL,
		Label:    req.Label,
		Active:   req.Active,
	}), nil
}

// UpdateSocialLink replaces the named link.
func (s *SiteSettingsService) UpdateSocialLink(ctx context.Context, id string, req UpsertSocialLinkRequest) (models.SocialLink, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.SocialLink{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid social link payload")
	}
	return s.store.SocialLinks.Update(id, models.SocialLink{
		Platform: req.Platform,
		URL:      req.URL,
		Label:    req.Label,
		Active:   req.Active,
	})
}

// DeleteSocialLink removes the named link.
func (s *SiteSettingsService) DeleteSocialLink(ctx context.Context, id string) error {
	if !s.store.SocialLinks.Remove(id) {
		return appErrors.Clone(appErrors.ErrNotFound, "social link not found")
	}
	return nil
}

// ReorderSocialLinks applies a new display order.
func (s *SiteSettingsService) ReorderSocialLinks(ctx context.Context, req ReorderRequest) ([]models.SocialLink, error) {
	return s.store.SocialLinks.Reorder(req.OrderedIDs)
}

// ResetPasswordRequests lists requests newest-first, one page at a time.
func (s *SiteSettingsService) ResetPasswordRequests(ctx context.Context, params pagination.Params) (pagination.Page[models.ResetPasswordRequest], error) {
	return pagination.Paginate(s.store.ResetRequests.List(), params)
}

// ResolveResetPasswordRequest marks a request handled.
func (s *SiteSettingsService) ResolveResetPasswordRequest(ctx context.Context, id string) (models.ResetPasswordRequest, error) {
	return s.store.ResetRequests.Resolve(id)
}
