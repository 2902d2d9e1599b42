package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfraccalc/fracdiff"
	"github.com/sgostarter/libfraccalc/funclib"
	"github.com/sgostarter/libfraccalc/recompute"
)

var functionKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

type viewerApp struct {
	cfg    Config
	logger l.Wrapper

	ctrl recompute.Controller

	funcIDs []string
	funcIdx int

	orderSlider *slider
	constSlider *slider
	powerSlider *slider

	lock     sync.Mutex
	frame    *recompute.Frame
	advisory string

	base   fracdiff.SampledFunction
	baseOK bool
}

func newViewerApp(cfg Config, logger l.Wrapper) *viewerApp {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	app := &viewerApp{
		cfg:     cfg,
		logger:  logger.WithFields(l.StringField(l.ClsKey, "viewerApp")),
		funcIDs: funclib.IDs(),
	}

	for idx, id := range app.funcIDs {
		if id == funclib.FunctionMonomial {
			app.funcIdx = idx
		}
	}

	sliderW := cfg.WindowWidth * 6 / 10
	sliderX := 70
	sliderY := cfg.WindowHeight - 90

	app.constSlider = &slider{
		label: "const c", min: cfg.ConstLimits.Min, max: cfg.ConstLimits.Max,
		step: cfg.SliderStep, val: 1,
		x: sliderX, y: sliderY, w: sliderW, h: 16,
	}
	app.powerSlider = &slider{
		label: "power k", min: cfg.PowerLimits.Min, max: cfg.PowerLimits.Max,
		step: cfg.SliderStep, val: 1,
		x: sliderX, y: sliderY + 24, w: sliderW, h: 16,
	}
	app.orderSlider = &slider{
		label: "order a", min: cfg.OrderLimits.Min, max: cfg.OrderLimits.Max,
		step: cfg.SliderStep, val: 0,
		x: sliderX, y: sliderY + 48, w: sliderW, h: 16,
	}

	app.ctrl = recompute.NewController(recompute.Config{
		InitialParams:   app.params(),
		ComputeDeadline: cfg.ComputeDeadline,
	}, nil, app, logger)

	app.refreshBase()
	app.ctrl.Update()

	return app
}

func (app *viewerApp) Close() {
	app.ctrl.TriggerStop()
	app.ctrl.Wait()
}

func (app *viewerApp) functionParams() funclib.Params {
	if app.funcIDs[app.funcIdx] != funclib.FunctionMonomial {
		return nil
	}

	return funclib.Params{
		funclib.ParamConst: app.constSlider.val,
		funclib.ParamPower: app.powerSlider.val,
	}
}

func (app *viewerApp) params() recompute.Params {
	return recompute.Params{
		FunctionID:     app.funcIDs[app.funcIdx],
		FunctionParams: app.functionParams(),
		Order:          app.orderSlider.val,
		Domain:         app.cfg.Domain,
	}
}

// OnFrame and OnAdvisory run on the controller's worker routine.
func (app *viewerApp) OnFrame(frame *recompute.Frame) {
	app.lock.Lock()
	defer app.lock.Unlock()

	app.frame = frame
	app.advisory = ""
}

func (app *viewerApp) OnAdvisory(requestID string, err error) {
	app.lock.Lock()
	defer app.lock.Unlock()

	app.advisory = fmt.Sprintf("[%s] %v", requestID, err)
}

func (app *viewerApp) refreshBase() {
	sf, err := funclib.Sample(app.funcIDs[app.funcIdx], app.functionParams(), app.cfg.Domain)

	app.lock.Lock()
	defer app.lock.Unlock()

	if err != nil {
		app.logger.WithFields(l.ErrorField(err)).Error("sample base function")

		app.baseOK = false
		app.advisory = err.Error()

		return
	}

	app.base = sf
	app.baseOK = true
}

func (app *viewerApp) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	changed := false

	if app.orderSlider.update() {
		changed = true
	}

	if app.funcIDs[app.funcIdx] == funclib.FunctionMonomial {
		if app.constSlider.update() {
			changed = true
		}

		if app.powerSlider.update() {
			changed = true
		}
	}

	for idx, key := range functionKeys {
		if idx >= len(app.funcIDs) {
			break
		}

		if inpututil.IsKeyJustPressed(key) && idx != app.funcIdx {
			app.funcIdx = idx
			changed = true
		}
	}

	if changed {
		app.refreshBase()
		app.ctrl.Update(
			recompute.FunctionOption(app.funcIDs[app.funcIdx], app.functionParams()),
			recompute.OrderOption(app.orderSlider.val),
			recompute.DomainOption(app.cfg.Domain),
		)
	}

	return nil
}

type plotRect struct {
	x, y, w, h int
}

func (app *viewerApp) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x18, G: 0x18, B: 0x20, A: 0xff})

	app.lock.Lock()
	frame := app.frame
	advisory := app.advisory
	base := app.base
	baseOK := app.baseOK
	app.lock.Unlock()

	area := plotRect{x: 60, y: 50, w: app.cfg.WindowWidth - 100, h: app.cfg.WindowHeight - 180}

	yMin, yMax := app.seriesRange(frame, base, baseOK)

	app.drawAxes(screen, area, yMin, yMax)

	if baseOK {
		app.drawSeries(screen, area, base.Xs, base.Ys, yMin, yMax,
			color.RGBA{R: 0x50, G: 0x90, B: 0xf0, A: 0xff})
	}

	if frame != nil {
		app.drawSeries(screen, area, frame.Xs, frame.Ys, yMin, yMax,
			color.RGBA{R: 0x40, G: 0xd0, B: 0x70, A: 0xff})
	}

	ps := app.functionParams()
	functionID := app.funcIDs[app.funcIdx]

	ebitenutil.DebugPrintAt(screen, fLabel(functionID, ps), area.x, 10)
	ebitenutil.DebugPrintAt(screen, gLabel(functionID, ps, app.orderSlider.val), area.x, 26)

	var picks []string
	for idx, id := range app.funcIDs {
		marker := " "
		if idx == app.funcIdx {
			marker = "*"
		}

		picks = append(picks, fmt.Sprintf("%d:%s%s", idx+1, marker, id))
	}

	ebitenutil.DebugPrintAt(screen, strings.Join(picks, "  "), area.x, app.cfg.WindowHeight-24)

	if advisory != "" {
		ebitenutil.DebugPrintAt(screen, "! "+advisory, area.x, 42)
	} else if state := app.ctrl.State(); state != recompute.StateIdle {
		ebitenutil.DebugPrintAt(screen, state.String()+"...", area.x, 42)
	}

	app.constSlider.draw(screen)
	app.powerSlider.draw(screen)
	app.orderSlider.draw(screen)
}

func (app *viewerApp) seriesRange(frame *recompute.Frame, base fracdiff.SampledFunction, baseOK bool) (yMin, yMax float64) {
	yMin = math.Inf(1)
	yMax = math.Inf(-1)

	scan := func(ys []float64) {
		for _, y := range ys {
			if math.IsNaN(y) || math.IsInf(y, 0) {
				continue
			}

			yMin = math.Min(yMin, y)
			yMax = math.Max(yMax, y)
		}
	}

	if baseOK {
		scan(base.Ys)
	}

	if frame != nil {
		scan(frame.Ys)
	}

	if yMin > yMax {
		return -1, 1
	}

	if yMax-yMin < 1e-9 {
		yMin--
		yMax++

		return
	}

	pad := (yMax - yMin) * 0.05
	yMin -= pad
	yMax += pad

	return
}

func (app *viewerApp) toScreen(area plotRect, x, y, yMin, yMax float64) (float32, float32) {
	d := app.cfg.Domain

	sx := float64(area.x) + (x-d.Start)/(d.End-d.Start)*float64(area.w)
	sy := float64(area.y) + float64(area.h) - (y-yMin)/(yMax-yMin)*float64(area.h)

	return float32(sx), float32(sy)
}

func (app *viewerApp) drawAxes(screen *ebiten.Image, area plotRect, yMin, yMax float64) {
	axisColor := color.RGBA{R: 0x48, G: 0x48, B: 0x50, A: 0xff}

	vector.StrokeLine(screen, float32(area.x), float32(area.y), float32(area.x),
		float32(area.y+area.h), 1, axisColor, true)
	vector.StrokeLine(screen, float32(area.x), float32(area.y+area.h), float32(area.x+area.w),
		float32(area.y+area.h), 1, axisColor, true)

	// y=0 gridline when visible.
	if yMin < 0 && yMax > 0 {
		_, zeroY := app.toScreen(area, app.cfg.Domain.Start, 0, yMin, yMax)

		vector.StrokeLine(screen, float32(area.x), zeroY, float32(area.x+area.w), zeroY, 1,
			color.RGBA{R: 0x30, G: 0x30, B: 0x38, A: 0xff}, true)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.3g", yMax), 8, area.y-6)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.3g", yMin), 8, area.y+area.h-10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.3g", app.cfg.Domain.Start), area.x, area.y+area.h+6)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.3g", app.cfg.Domain.End), area.x+area.w-24, area.y+area.h+6)
}

func (app *viewerApp) drawSeries(screen *ebiten.Image, area plotRect, xs, ys []float64, yMin, yMax float64, clr color.Color) {
	for idx := 1; idx < len(xs) && idx < len(ys); idx++ {
		if math.IsNaN(ys[idx-1]) || math.IsNaN(ys[idx]) {
			continue
		}

		x0, y0 := app.toScreen(area, xs[idx-1], ys[idx-1], yMin, yMax)
		x1, y1 := app.toScreen(area, xs[idx], ys[idx], yMin, yMax)

		vector.StrokeLine(screen, x0, y0, x1, y1, 1.5, clr, true)
	}
}

func (app *viewerApp) Layout(_, _ int) (int, int) {
	return app.cfg.WindowWidth, app.cfg.WindowHeight
}
