package service

import (
	"context"

	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/repository"
)

// Denormalizer attaches parent names to child records at read time. Each call
// resolves every referenced id with one query per parent collection.
type Denormalizer struct {
	zones      repository.ZoneRepository
	businesses repository.BusinessRepository
	activities repository.ActivityRepository
}

// NewDenormalizer creates the read-side join helper.
func NewDenormalizer(zones repository.ZoneRepository, businesses repository.BusinessRepository, activities repository.ActivityRepository) *Denormalizer {
	return &Denormalizer{zones: zones, businesses: businesses, activities: activities}
}

// Activities attaches negocioNombre.
func (d *Denormalizer) Activities(ctx context.Context, items []domain.Activity) ([]ActivityView, error) {
	names, err := d.businessNames(ctx, collectIDs(items, func(a domain.Activity) string { return a.BusinessID }))
	if err != nil {
		return nil, err
	}
	out := make([]ActivityView, len(items))
	for i, a := range items {
		out[i] = ActivityView{Activity: a, BusinessName: lookup(names, a.BusinessID)}
	}
	return out, nil
}

// AmbulantClients attaches zonaNombre.
func (d *Denormalizer) AmbulantClients(ctx context.Context, items []domain.AmbulantClient) ([]AmbulantClientView, error) {
	ids := collectIDs(items, func(c domain.AmbulantClient) string { return c.ZoneID })
	names := map[string]string{}
	if len(ids) > 0 {
		zones, err := d.zones.List(ctx, repository.ZoneFilter{IDs: ids})
		if err != nil {
			return nil, err
		}
		for _, z := range zones {
			names[z.ID] = z.Name
		}
	}
	out := make([]AmbulantClientView, len(items))
	for i, c := range items {
		out[i] = AmbulantClientView{AmbulantClient: c, ZoneName: lookup(names, c.ZoneID)}
	}
	return out, nil
}

// ActivityClients attaches negocioNombre and actividadNombre.
func (d *Denormalizer) ActivityClients(ctx context.Context, items []domain.ActivityClient) ([]ActivityClientView, error) {
	businessNames, err := d.businessNames(ctx, collectIDs(items, func(c domain.ActivityClient) string { return c.BusinessID }))
	if err != nil {
		return nil, err
	}
	activityNames := map[string]string{}
	if ids := collectIDs(items, func(c domain.ActivityClient) string { return c.ActivityID }); len(ids) > 0 {
		activities, err := d.activities.List(ctx, repository.ActivityFilter{IDs: ids})
		if err != nil {
			return nil, err
		}
		for _, a := range activities {
			activityNames[a.ID] = a.Name
		}
	}
	out := make([]ActivityClientView, len(items))
	for i, c := range items {
		out[i] = ActivityClientView{
			ActivityClient: c,
			BusinessName:   lookup(businessNames, c.BusinessID),
			ActivityName:   lookup(activityNames, c.ActivityID),
		}
	}
	return out, nil
}

func (d *Denormalizer) businessNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := map[string]string{}
	if len(ids) == 0 {
		return names, nil
	}
	businesses, err := d.businesses.List(ctx, repository.BusinessFilter{IDs: ids})
	if err != nil {
		return nil, err
	}
	for _, b := range businesses {
		names[b.ID] = b.Name
	}
	return names, nil
}

func collectIDs[T any](items []T, key func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		id := key(item)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func lookup(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return UnknownName
}
