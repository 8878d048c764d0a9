package recorders

import (
	"strconv"

	"platform-stats/internal/events"
	"platform-stats/internal/models"
	"platform-stats/internal/shared/svcerrors"
)

// CounterDelta is one atomic increment derived from an event.
type CounterDelta struct {
	Key   models.CounterKey
	Delta int64
}

type routeFunc func(event events.StatEvent) ([]CounterDelta, *svcerrors.ServiceError)

// routingTable maps each event type to its counter-key derivation. The table
// is the only place keys are constructed from events: adding an event type
// means adding an entry here, not assembling key strings at call sites.
var routingTable = map[events.EventType]routeFunc{
	events.EventUserRegistered:      routeUserRegistered,
	events.EventMessageSent:         routeMessageSent,
	events.EventComplaintSubmitted:  routeComplaintSubmitted,
	events.EventComplaintResolved:   routeComplaintResolved,
	events.EventCandidateRegistered: routeCandidateRegistered,
	events.EventMemberRegistered:    routeMemberRegistered,
	events.EventRatingSubmitted:     routeRatingSubmitted,
}

// metricByRole maps user roles onto per-role platform counters. Admin is a
// valid role but has no dedicated counter, so it lands in users_total only.
var metricByRole = map[string]string{
	"citizen":        models.MetricUsersCitizen,
	"candidate":      models.MetricUsersCandidate,
	"current_member": models.MetricUsersMember,
}

func routeUserRegistered(event events.StatEvent) ([]CounterDelta, *svcerrors.ServiceError) {
	role, svcErr := requireDimension(event, events.DimRole)
	if svcErr != nil {
		return nil, svcErr
	}
	governorate, svcErr := requireDimension(event, events.DimGovernorate)
	if svcErr != nil {
		return nil, svcErr
	}

	roleMetric, knownRole := metricByRole[role]
	if !knownRole && role != "admin" {
		return nil, errUnknownRole(role)
	}

	amount := event.EffectiveAmount()
	deltas := []CounterDelta{
		{Key: models.PlatformKey(models.MetricUsersTotal), Delta: amount},
	}
	if knownRole {
		deltas = append(deltas, CounterDelta{Key: models.PlatformKey(roleMetric), Delta: amount})
	}
	key, svcErr := regionKey(governorate, models.MetricUsersTotal)
	if svcErr != nil {
		return nil, svcErr
	}
	return append(deltas, CounterDelta{Key: key, Delta: amount}), nil
}

func routeMessageSent(event events.StatEvent) ([]CounterDelta, *svcerrors.ServiceError) {
	return platformAndRegion(event, models.MetricMessagesTotal)
}

func routeComplaintSubmitted(event events.StatEvent) ([]CounterDelta, *svcerrors.ServiceError) {
	return platformAndRegion(event, models.MetricComplaintsTotal)
}

func routeComplaintResolved(event events.StatEvent) ([]CounterDelta, *svcerrors.ServiceError) {
	return platformAndRegion(event, models.MetricComplaintsResolved)
}

func routeCandidateRegistered(event events.StatEvent) ([]CounterDelta, *svcerrors.ServiceError) {
	return partyOnly(event, models.MetricCandidatesTotal)
}

func routeMemberRegistered(event events.StatEvent) ([]CounterDelta, *svcerrors.ServiceError) {
	return partyOnly(event, models.MetricMembersTotal)
}

func routeRatingSubmitted(event events.StatEvent) ([]CounterDelta, *svcerrors.ServiceError) {
	party, svcErr := requireDimension(event, events.DimParty)
	if svcErr != nil {
		return nil, svcErr
	}
	scoreRaw, svcErr := requireDimension(event, events.DimScore)
	if svcErr != nil {
		return nil, svcErr
	}
	score, err := strconv.ParseInt(scoreRaw, 10, 64)
	if err != nil || score < 1 || score > 5 {
		return nil, errInvalidScore(scoreRaw)
	}

	amount := event.EffectiveAmount()
	sumKey, svcErr := partyKey(party, models.MetricRatingSum)
	if svcErr != nil {
		return nil, svcErr
	}
	countKey, svcErr := partyKey(party, models.MetricRatingCount)
	if svcErr != nil {
		return nil, svcErr
	}
	return []CounterDelta{
		{Key: sumKey, Delta: score * amount},
		{Key: countKey, Delta: amount},
		{Key: models.PlatformKey(models.MetricRatingsTotal), Delta: amount},
	}, nil
}

// platformAndRegion routes events counted both platform-wide and per governorate.
func platformAndRegion(event events.StatEvent, metric string) ([]CounterDelta, *svcerrors.ServiceError) {
	governorate, svcErr := requireDimension(event, events.DimGovernorate)
	if svcErr != nil {
		return nil, svcErr
	}
	key, svcErr := regionKey(governorate, metric)
	if svcErr != nil {
		return nil, svcErr
	}
	amount := event.EffectiveAmount()
	return []CounterDelta{
		{Key: models.PlatformKey(metric), Delta: amount},
		{Key: key, Delta: amount},
	}, nil
}

func partyOnly(event events.StatEvent, metric string) ([]CounterDelta, *svcerrors.ServiceError) {
	party, svcErr := requireDimension(event, events.DimParty)
	if svcErr != nil {
		return nil, svcErr
	}
	key, svcErr := partyKey(party, metric)
	if svcErr != nil {
		return nil, svcErr
	}
	return []CounterDelta{{Key: key, Delta: event.EffectiveAmount()}}, nil
}

func requireDimension(event events.StatEvent, name string) (string, *svcerrors.ServiceError) {
	value := event.Dimensions[name]
	if value == "" {
		return "", errMissingDimension(string(event.Type), name)
	}
	return value, nil
}

func regionKey(governorate, metric string) (models.CounterKey, *svcerrors.ServiceError) {
	key, err := models.NewCounterKey(models.CategoryRegion, governorate, metric)
	if err != nil {
		return models.CounterKey{}, errInvalidEntityID(governorate, err)
	}
	return key, nil
}

func partyKey(party, metric string) (models.CounterKey, *svcerrors.ServiceError) {
	key, err := models.NewCounterKey(models.CategoryParty, party, metric)
	if err != nil {
		return models.CounterKey{}, errInvalidEntityID(party, err)
	}
	return key, nil
}
