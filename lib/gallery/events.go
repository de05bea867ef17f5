package gallery

type EventListener func(g *Gallery, data interface{})

type EventDataStateUpdated struct {
	Event string
	Scene string
}

func (g *Gallery) AddEventListener(event string, callback EventListener) {
	g.listener[event] = append(g.listener[event], callback)
}

func (g *Gallery) invoke(event string, data interface{}) {
	for _, listener := range g.listener[event] {
		go listener(g, data)
	}
}
