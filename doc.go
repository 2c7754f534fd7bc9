// Package searchlab is the support library for classic search labs:
// breadth-first, depth-first, iterative deepening, uniform-cost, greedy
// and A* over grid mazes and other discrete state spaces.
//
// What it provides:
//
//	fringe/         – the open list: Node, Fringe (FIFO | LIFO | Priority),
//	                  lazy replace via tombstones, YAML config, Synchronized
//	fringe/metrics/ – Prometheus collector over fringe Stats
//
// Search drivers live with the caller. They depend only on the
// fringe.Frontier contract:
//
//	open := fringe.NewPriority[Cell]()
//	_ = open.Add(fringe.NewNode(start, 0, h(start), nil))
//	for !open.IsEmpty() {
//	    n, _ := open.Remove()
//	    if n.State() == goal {
//	        return n.Path()
//	    }
//	    // expand n, Add new states, Replace cheaper ones
//	}
//
// States are any comparable Go value: an int cell index, a struct{X, Y int},
// a string key.
//
//	go get github.com/katalvlaran/searchlab/fringe
package searchlab
