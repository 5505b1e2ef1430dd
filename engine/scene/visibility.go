package scene

import "github.com/Carmen-Shannon/oxy-gl/engine/game_object"

// Partition splits objects into the world set and the overlay (HUD) set. The input
// is not modified and each subset keeps the relative order of the input. Every
// non-nil object lands in exactly one subset; nil entries are dropped.
//
// Parameters:
//   - objects: the objects to split
//
// Returns:
//   - world: objects drawn in the depth-tested world pass
//   - overlay: objects drawn last in the overlay pass
func Partition(objects []game_object.GameObject) (world, overlay []game_object.GameObject) {
	world = make([]game_object.GameObject, 0, len(objects))
	overlay = make([]game_object.GameObject, 0)
	for _, obj := range objects {
		switch {
		case obj == nil:
		case obj.HUD():
			overlay = append(overlay, obj)
		default:
			world = append(world, obj)
		}
	}
	return world, overlay
}
