package qt

import (
	"github.com/kbukum/qtkit/config"
	"github.com/kbukum/qtkit/driver"
	"github.com/kbukum/qtkit/errors"
	"github.com/kbukum/qtkit/logger"
)

// Rule names the resolution rule that produced a Resolution.
type Rule string

const (
	// RuleLoaded means an already-initialized binding was detected.
	RuleLoaded Rule = "loaded"
	// RuleOverride means the QT_API override named a binding the
	// configured surface's generation accepts.
	RuleOverride Rule = "override"
	// RuleAmbiguous means the surface is non-Qt (manual embedding) and the
	// QT_API override alone decided.
	RuleAmbiguous Rule = "ambiguous"
	// RuleCandidates means no single binding could be determined and an
	// ordered candidate list must be probed.
	RuleCandidates Rule = "candidates"
)

// Resolution is the resolver's output: either a single explicit API or an
// ordered candidate list to probe, never both.
type Resolution struct {
	// API is the resolved binding when resolution was explicit.
	API API
	// Candidates is the ordered probe list when it was not.
	Candidates []API
	// Rule records which decision rule won.
	Rule Rule
	// IgnoredOverride records a recognized override token that could not
	// be honored for the configured surface, so operators can see why
	// their override had no effect.
	IgnoredOverride API
}

// Explicit reports whether resolution produced a single binding identity.
// Activation failures for an explicit identity are fatal; only candidate
// probing may fall back.
func (r Resolution) Explicit() bool { return r.API != "" }

// Resolve picks a binding identity, or a candidate list when no usable
// hint exists. Rules apply in strict priority order and the first match
// wins:
//
//  1. a binding already loaded in the process (fixed family priority),
//  2. the QT_API override, accepted only when it names the primary or
//     secondary binding of the configured surface's generation,
//  3. for non-Qt surfaces (manual embedding), the QT_API override alone,
//  4. an ordered candidate list biased toward the surface's generation.
//
// An unrecognized override token is a configuration error regardless of
// which rule would have applied; it is reported before any activation.
func Resolve(reg *driver.Registry, cfg *config.Config) (Resolution, error) {
	log := logger.Get("qt.resolve")

	for _, api := range loadedPriority {
		if reg.Loaded(api.DriverName()) {
			log.Info("binding already loaded in process", logger.Fields(
				logger.FieldBinding, string(api),
			))
			return Resolution{API: api, Rule: RuleLoaded}, nil
		}
	}

	override, ok := ParseToken(cfg.API)
	if !ok {
		return Resolution{}, errors.InvalidConfig(config.EnvAPIOverride, cfg.API, AcceptedTokens())
	}

	gen := cfg.Surface.Generation()
	var ignored API
	if gen == 0 {
		// Manual embedding without a Qt surface: the override is the only
		// hint and any recognized token is accepted.
		if override != "" {
			log.Info("override accepted for non-Qt surface", logger.Fields(
				logger.FieldBinding, string(override),
				logger.FieldSurface, string(cfg.Surface),
			))
			return Resolution{API: override, Rule: RuleAmbiguous}, nil
		}
	} else if override != "" {
		if overrideAccepted(override, gen) {
			log.Info("override accepted", logger.Fields(
				logger.FieldBinding, string(override),
				logger.FieldSurface, string(cfg.Surface),
			))
			return Resolution{API: override, Rule: RuleOverride}, nil
		}
		// The override can only change the binding within the surface's
		// own family pair: anything else is ignored, never silently
		// activated.
		log.Warn("override not usable for surface, ignoring", logger.Fields(
			logger.FieldBinding, string(override),
			logger.FieldSurface, string(cfg.Surface),
		))
		ignored = override
	}

	candidates := candidateList(gen)
	fields := logger.Fields(
		logger.FieldSurface, string(cfg.Surface),
		"candidates", candidateNames(candidates),
	)
	if ignored != "" {
		fields["ignored_override"] = string(ignored)
	}
	log.Debug("no explicit binding, probing candidates", fields)
	return Resolution{Candidates: candidates, Rule: RuleCandidates, IgnoredOverride: ignored}, nil
}

// overrideAccepted reports whether the override may explicitly bind a
// Qt surface of the given generation. Only the primary and secondary
// families are selectable this way; the alternate gen-5 binding is
// reachable by override only on non-Qt surfaces.
func overrideAccepted(override API, generation int) bool {
	switch generation {
	case 5:
		return override == APIPyQt5 || override == APIPySide2
	case 4:
		return override == APIPyQt4 || override == APIPySide
	default:
		return false
	}
}

// candidateList orders the probe list by surface generation: the
// surface's own generation first (primary then secondary implementation),
// then the other generation in the same relative order. PythonQt is never
// probed blindly; it is only reachable when named explicitly.
func candidateList(generation int) []API {
	if generation == 4 {
		return []API{APIPyQt4, APIPySide, APIPyQt4v1, APIPyQt5, APIPySide2}
	}
	return []API{APIPyQt5, APIPySide2, APIPyQt4, APIPySide, APIPyQt4v1}
}

func candidateNames(apis []API) []string {
	names := make([]string, len(apis))
	for i, a := range apis {
		names[i] = string(a)
	}
	return names
}
