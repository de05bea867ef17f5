package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// @Summary	List the scenes available from the loaded recipe
// @Router		/api/scenes [get]
// @Tags		state
// @Produce	json
// @Success	200	{array}	string
func (a *Api) handleScenes(w http.ResponseWriter, _ *http.Request) {
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.gallery.SceneNames())
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't encode scene list: %s", err), http.StatusInternalServerError)
		return
	}
}

// @Summary	Fetch the generated viewer state for one scene
// @Router		/api/state/{scene} [get]
// @Tags		state
// @Param		scene	path	string	true	"Name of the scene from the recipe"
// @Produce	json
// @Success	200
// @Failure	404	{string}	string	"The scene does not exist in the recipe"
func (a *Api) handleState(w http.ResponseWriter, req *http.Request) {
	sceneName := req.PathValue("scene")
	if sceneName == "" {
		http.Error(w, "Missing scene name", http.StatusBadRequest)
		return
	}
	scene := a.gallery.Scene(sceneName)
	if scene == nil {
		http.Error(w, "Scene does not exist", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(scene)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't encode state: %s", err), http.StatusInternalServerError)
		return
	}
	a.Stats.StatesServed++
}

// @Summary	Fetch stats about the running generator
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	a.Stats.Update()
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.Stats)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
	_, err = fmt.Fprintf(w, "\n")
	if err != nil {
		log.Printf("could not write response: %s\n", err.Error())
		return
	}
}

type Config struct {
	Scenes []string `json:"scenes"`
	Units  string   `json:"units"`
}

// @Summary	Summarize the loaded recipe
// @Router		/api/config [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	Config
func (a *Api) handleConfig(w http.ResponseWriter, _ *http.Request) {
	result := &Config{
		Scenes: a.gallery.SceneNames(),
		Units:  a.gallery.Config().Units,
	}
	encoder := json.NewEncoder(w)
	err := encoder.Encode(result)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't encode config: %s", err), http.StatusInternalServerError)
		return
	}
}
