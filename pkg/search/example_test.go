package search_test

import (
	"fmt"

	"github.com/matzehuels/mazewalk/pkg/grid"
	"github.com/matzehuels/mazewalk/pkg/search"
)

func ExampleSolve() {
	maze, _ := grid.FromRows([]string{
		"..#.",
		"#...",
		"..#X",
	})
	for _, s := range search.Strategies {
		res, _ := search.Solve(s, maze, nil)
		fmt.Println(s, res.Found, res.Exit)
	}
	// Output:
	// bfs true (2,3)
	// dfs true (2,3)
}

func ExampleEngine_Run() {
	maze, _ := grid.FromRows([]string{
		".#X",
	})
	eng, _ := search.New(search.BFS, maze, search.ObserverFunc(func(m grid.View, st *grid.State) error {
		fmt.Println("settled:", st.Count(grid.Settled))
		return nil
	}))
	res, _ := eng.Run()
	if !res.Found {
		fmt.Println("no solution!")
	}
	// Output:
	// settled: 1
	// no solution!
}
