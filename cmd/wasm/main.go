//go:build js && wasm

package main

import (
	"encoding/json"
	"sync"
	"syscall/js"

	"github.com/planora/planora/backend-go/internal/placement"
	"github.com/planora/planora/backend-go/internal/scene"
)

// The wasm build runs the same snapping engine the server uses, so a drag
// preview in the browser lands exactly where the server will settle it.

var (
	mu     sync.Mutex
	eng    = placement.NewEngine(placement.DefaultSnapConfig())
	design *scene.Design
)

func main() {
	planoraEngine := js.Global().Get("Object").New()

	// --- Commands (frontend → engine) ---
	planoraEngine.Set("loadDesign", js.FuncOf(loadDesign))
	planoraEngine.Set("updateDesign", js.FuncOf(updateDesign))
	planoraEngine.Set("loadSampleDesign", js.FuncOf(loadSampleDesign))

	// --- Queries (frontend ← engine) ---
	planoraEngine.Set("calculateSnap", js.FuncOf(calculateSnap))
	planoraEngine.Set("effectiveDimensions", js.FuncOf(effectiveDimensions))
	planoraEngine.Set("rotatedBounds", js.FuncOf(rotatedBounds))
	planoraEngine.Set("checkCollision", js.FuncOf(checkCollision))
	planoraEngine.Set("wallDistances", js.FuncOf(wallDistances))
	planoraEngine.Set("getDesign", js.FuncOf(getDesign))

	js.Global().Set("planoraEngine", planoraEngine)

	// Signal that WASM is ready
	js.Global().Set("planoraWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func errResult(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{"error": msg})
}

func jsonResult(v interface{}) interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return errResult(err.Error())
	}
	return js.ValueOf(string(data))
}

// --- Command Handlers ---

func loadDesign(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errResult("missing design JSON")
	}

	var doc scene.Design
	if err := json.Unmarshal([]byte(args[0].String()), &doc); err != nil {
		return errResult(err.Error())
	}
	if doc.Items == nil {
		doc.Items = make(map[string]scene.PlacedItem)
	}

	mu.Lock()
	design = &doc
	mu.Unlock()

	return js.ValueOf(map[string]interface{}{"ok": true})
}

// updateDesign replaces the loaded document; the frontend calls this after
// every acked operation.
func updateDesign(this js.Value, args []js.Value) interface{} {
	return loadDesign(this, args)
}

func loadSampleDesign(this js.Value, args []js.Value) interface{} {
	designID := "dsgn_sample"
	if len(args) > 0 && args[0].Type() == js.TypeString {
		designID = args[0].String()
	}

	mu.Lock()
	design = scene.NewSampleDesign(designID)
	mu.Unlock()

	return js.ValueOf(map[string]interface{}{"ok": true})
}

// --- Query Handlers ---

// snapRequest is the calculateSnap argument: the dragged item's instance id,
// the raw cursor position, and the wall-snap hysteresis flag from the
// previous frame.
type snapRequest struct {
	InstanceID  string  `json:"instanceId"`
	RawX        float64 `json:"rawX"`
	RawZ        float64 `json:"rawZ"`
	WallSnapped bool    `json:"wallSnapped"`
}

func calculateSnap(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errResult("missing snap request JSON")
	}

	var req snapRequest
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return errResult(err.Error())
	}

	mu.Lock()
	defer mu.Unlock()
	if design == nil {
		return errResult("no design loaded")
	}

	dragged, ok := design.Items[req.InstanceID]
	if !ok {
		return errResult("item not found: " + req.InstanceID)
	}

	items := make([]scene.PlacedItem, 0, len(design.Items))
	for _, it := range design.Items {
		items = append(items, it)
	}

	snap := eng.CalculateSnapPosition(
		req.RawX, req.RawZ,
		dragged,
		items,
		design.Room,
		design.Globals.GridStep,
		design.Globals,
		req.WallSnapped,
	)
	return jsonResult(snap)
}

func effectiveDimensions(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errResult("missing item JSON")
	}

	var item scene.PlacedItem
	if err := json.Unmarshal([]byte(args[0].String()), &item); err != nil {
		return errResult(err.Error())
	}

	w, d := placement.EffectiveDimensions(item)
	return jsonResult(map[string]float64{"width": w, "depth": d})
}

func rotatedBounds(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errResult("missing item JSON")
	}

	var item scene.PlacedItem
	if err := json.Unmarshal([]byte(args[0].String()), &item); err != nil {
		return errResult(err.Error())
	}

	return jsonResult(placement.RotatedBounds(item))
}

func checkCollision(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errResult("missing item JSON")
	}

	var a, b scene.PlacedItem
	if err := json.Unmarshal([]byte(args[0].String()), &a); err != nil {
		return errResult(err.Error())
	}
	if err := json.Unmarshal([]byte(args[1].String()), &b); err != nil {
		return errResult(err.Error())
	}

	return js.ValueOf(placement.CheckCollision(a, b))
}

func wallDistances(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errResult("missing item JSON")
	}

	var item scene.PlacedItem
	if err := json.Unmarshal([]byte(args[0].String()), &item); err != nil {
		return errResult(err.Error())
	}

	mu.Lock()
	defer mu.Unlock()
	if design == nil {
		return errResult("no design loaded")
	}

	dists := eng.WallDistances(item.X, item.Z, item, design.Room, design.Globals)
	return jsonResult(dists)
}

func getDesign(this js.Value, args []js.Value) interface{} {
	mu.Lock()
	defer mu.Unlock()
	if design == nil {
		return errResult("no design loaded")
	}
	return jsonResult(design)
}
