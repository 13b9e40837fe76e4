package ai

import (
	"fmt"
	"log/slog"

	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/news"
	"github.com/talgya/realmfleet/internal/realm"
)

// scrapTooManyShips scraps f's cheapest obsolete ship when r is over its
// fleet allowance and cannot pay the upkeep of the overage for the grace
// period. Returns the scrapped ship, or nil.
func (e *Engine) scrapTooManyShips(r *realm.Realm, f *fleet.Fleet) *fleet.Ship {
	overage := r.UsedFleetCapacity() - r.FleetAllowance
	if overage <= 0 {
		return nil
	}
	grace := e.Config.ScrapGraceTurns
	if r.Credits+r.CreditProduction*grace >= overage*grace {
		return nil
	}
	ship := f.CheapestObsolete()
	if ship == nil {
		return nil
	}
	f.RemoveShip(ship)
	r.Increment(realm.StatShipsScrapped)
	slog.Info("ship scrapped", "realm", r.Name, "fleet", f.Name, "ship", ship.Name, "overage", overage)
	e.publish(news.Record{Kind: news.KindMessage, Realm: r.ID, Coord: f.Coord, Title: "Ship scrapped",
		Text: fmt.Sprintf("%s was scrapped; the fleet is %d over its allowance.", ship.Name, overage)})
	e.disbandIfEmpty(r, f)
	return ship
}
