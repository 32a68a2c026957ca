// Package synth implements a modular, pull-based synthesis graph.
//
// A graph is built from modules (oscillators, envelopes, filters, mixers)
// wired together with Connect or Chain. The module at the root of the
// graph is pulled one sample at a time; each pull recursively advances
// every upstream module by exactly one tick, so all nodes stay in sample
// lockstep regardless of graph topology.
//
//	osc := synth.NewOscillator()
//	osc.Frequency.SetValue(440)
//
//	env := synth.NewEnvelope()
//	env.A.SetValue(0.01)
//	env.D.SetValue(0.1)
//	env.S.SetValue(0.8)
//	env.R.SetValue(0.3)
//
//	amp := synth.NewMultiplier()
//	synth.ConnectParam(env, &amp.Amount)
//
//	out := synth.NewBufferOutput(44100)
//	synth.Chain(osc, amp, out)
//
//	env.Attack()
//	buf := out.RenderSeconds(2)
//
// Graph evaluation is strictly single-threaded and allocation-free on the
// pull path. Mutating a graph concurrently with an in-progress pull is
// not supported; reconfigure only between buffer fills.
package synth
