package store

import (
	"time"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/taskq"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/transport"
	"github.com/l423r/mealrush-mobile-v2-sub001/vault"
)

// Deps are the collaborators injected into the store tree. Now is the
// clock the TTL cache measures against; tests substitute a fake.
type Deps struct {
	Transport *transport.Client
	Vault     vault.TokenVault
	Tasks     *taskq.Runner
	Now       func() time.Time
}

// Root owns one instance of every domain store and is the only channel
// through which a store reaches a sibling. Created once per application
// session.
type Root struct {
	Auth            *Auth
	Profile         *Profile
	Products        *Products
	Meals           *Meals
	Weight          *Weight
	Recommendations *Recommendations
	Nutrition       *Nutrition
	Notifications   *Notifications
	UI              *UI
}

// NewRoot wires the store tree. Deps.Now defaults to time.Now.
func NewRoot(deps Deps) *Root {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	r := &Root{}
	r.Auth = newAuth(r, deps)
	r.Profile = newProfile(r, deps)
	r.Products = newProducts(r, deps)
	r.Meals = newMeals(r, deps)
	r.Weight = newWeight(r, deps)
	r.Recommendations = newRecommendations(r, deps)
	r.Nutrition = newNutrition(r, deps)
	r.Notifications = newNotifications(r, deps)
	r.UI = newUI(r, deps)
	return r
}

// ResetAll returns every store to its freshly-constructed state. Invoked
// on logout and on a dead session detected at launch. In-flight request
// results that arrive afterwards are dropped by the epoch guard.
func (r *Root) ResetAll() {
	r.Auth.resetState()
	r.Profile.resetState()
	r.Products.resetState()
	r.Meals.resetState()
	r.Weight.resetState()
	r.Recommendations.resetState()
	r.Nutrition.resetState()
	r.Notifications.resetState()
	r.UI.resetState()
	resetsTotal.Inc()
}
