package engine

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/Sanl2005/citizen-dna-app/models"
)

// featureOrder is the fixed contract between the trained artifact and this
// scorer. A retrain must emit weights in exactly this order. The scheme-context
// slot exists because the training pipeline scores (profile, scheme) pairs;
// profile-level scoring passes no scheme, so that categorical encodes through
// its default index.
var featureOrder = []string{
	"scheme_context",
	"gender",
	"age",
	"marital_status",
	"state",
	"area_of_residence",
	"social_category",
	"minority_status",
	"disability_status",
	"bpl_tier",
	"is_student",
	"employment_status",
	"occupation",
	"income",
	"single_parent_child",
}

// Encoder maps a categorical value to its fitted index. Unseen values fall
// back to Default instead of failing.
type Encoder struct {
	Classes map[string]int `json:"classes"`
	Default int            `json:"default"`
}

func (e Encoder) Encode(value string) int {
	if idx, ok := e.Classes[value]; ok {
		return idx
	}
	return e.Default
}

// Head is one linear scoring head (weights over featureOrder plus intercept).
type Head struct {
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// Artifact is the trained risk model: two linear heads over a shared feature
// vector, with per-categorical encoding tables. It is written as JSON by the
// offline training pipeline.
type Artifact struct {
	Health    Head               `json:"health"`
	Financial Head               `json:"financial"`
	Encoders  map[string]Encoder `json:"encoders"`
}

// LoadArtifact reads and validates a model artifact from disk.
func LoadArtifact(path string) (*Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if len(a.Health.Weights) != len(featureOrder) || len(a.Financial.Weights) != len(featureOrder) {
		return nil, fmt.Errorf("artifact weight count mismatch: want %d, got %d/%d",
			len(featureOrder), len(a.Health.Weights), len(a.Financial.Weights))
	}
	return &a, nil
}

func (a *Artifact) encode(feature, value string) float64 {
	return float64(a.Encoders[feature].Encode(value))
}

// featureVector builds the ordered numeric vector for a profile. schemeContext
// is empty for profile-level scoring.
func (a *Artifact) featureVector(p *models.CitizenProfile, schemeContext string) []float64 {
	return []float64{
		a.encode("scheme_context", schemeContext),
		a.encode("gender", p.Gender),
		float64(p.Age),
		a.encode("marital_status", p.MaritalStatus),
		a.encode("state", p.LocationState),
		a.encode("area_of_residence", p.AreaOfResidence),
		a.encode("social_category", p.SocialCategory),
		boolFeature(p.MinorityStatus),
		boolFeature(p.DisabilityStatus),
		a.encode("bpl_tier", BPLTier(p.Income)),
		boolFeature(p.IsStudent),
		a.encode("employment_status", p.EmploymentStatus),
		a.encode("occupation", p.Occupation),
		p.Income,
		boolFeature(p.SingleParentChild),
	}
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// BPLTier classifies annual income into the below/above poverty line
// categorical the model was trained with.
func BPLTier(income float64) string {
	if income < 100000 {
		return "BPL"
	}
	return "APL"
}

// predict evaluates one head, clamped to [0,1].
func (h Head) predict(features []float64) float64 {
	v := h.Intercept
	for i, w := range h.Weights {
		v += w * features[i]
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ModelScorer scores through the trained artifact when one is available and
// silently degrades to the rule-based path otherwise. It never returns or
// raises an error: a missing file, a malformed artifact, or a panic inside
// inference all yield the rule-based scores.
type ModelScorer struct {
	path     string
	fallback RuleScorer

	mu       sync.RWMutex
	artifact *Artifact
}

// NewModelScorer builds a scorer bound to the artifact at path. Loading is
// attempted once up front; failure is logged and tolerated.
func NewModelScorer(path string) *ModelScorer {
	m := &ModelScorer{path: path}
	m.reload()
	return m
}

func (m *ModelScorer) reload() {
	a, err := LoadArtifact(m.path)
	if err != nil {
		log.Printf("risk model unavailable (%v); using rule-based scoring", err)
		return
	}
	m.mu.Lock()
	m.artifact = a
	m.mu.Unlock()
	log.Printf("risk model loaded from %s", m.path)
}

func (m *ModelScorer) current() *Artifact {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.artifact
}

func (m *ModelScorer) Score(p *models.CitizenProfile) (out Scores) {
	a := m.current()
	if a == nil {
		return m.fallback.Score(p)
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("risk model inference failed (%v); using rule-based scoring", r)
			out = m.fallback.Score(p)
		}
	}()
	features := a.featureVector(p, "")
	return Scores{
		Health:    clampScore(a.Health.predict(features)),
		Financial: clampScore(a.Financial.predict(features)),
	}
}

// Watch reloads the artifact whenever the training pipeline rewrites it. The
// directory (not the file) is watched so replace-by-rename is picked up. The
// watcher runs until the process exits.
func (m *ModelScorer) Watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("model watcher: %w", err)
	}
	dir := filepath.Dir(m.path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", strconv.Quote(dir), err)
	}
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(m.path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					m.reload()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("model watcher error: %v", err)
			}
		}
	}()
	return nil
}
