package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/nearcell"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	type Record struct {
		Val      []string
		Mod      []int8
		Integers []int16
		Float6   []float64
	}
	z := Record{
		Val:      []string{"azerty", "hello", "world", "random"},
		Mod:      []int8{12, 10, 13, 0},
		Integers: []int16{100, 250, 300},
		Float6:   []float64{100.5, 165.63, 153.5},
	}
	c := nearcell.New(z)
	sink := 0
	for i := 0; i < 10000; i++ {
		c.Update(func(r *Record) {
			r.Integers[0]++
		})
		sink += len(c.Get().Val)
		sink += int(c.Ptr().Integers[0])
	}
	log.Println("iterations done, sink:", sink)
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
