package exgen

import (
	"context"

	"github.com/google/uuid"

	"github.com/parlolabs/parlo/internal/exercise"
)

// StaticGenerator serves a built-in exercise bank. It backs the offline
// mode used when no LLM provider is configured, and keeps the first lesson
// instant even when one is.
type StaticGenerator struct{}

var _ Generator = StaticGenerator{}

// NewStatic returns a generator backed by the built-in bank.
func NewStatic() StaticGenerator {
	return StaticGenerator{}
}

func (StaticGenerator) Generate(_ context.Context, input GenerateInput) ([]exercise.Exercise, error) {
	bank, ok := staticBank[input.Lesson.ID]
	if !ok {
		bank = staticBank["1"]
	}
	out := make([]exercise.Exercise, len(bank))
	copy(out, bank)
	for i := range out {
		out[i].ID = uuid.New().String()
	}
	if input.Count > 0 && input.Count < len(out) {
		out = out[:input.Count]
	}
	return out, nil
}

// staticBank holds one canned exercise set per seeded lesson. Speaking and
// listening items carry their audio text inline so the offline path covers
// every exercise kind.
var staticBank = map[string][]exercise.Exercise{
	"1": {
		{Kind: exercise.Translate, Question: "Translate: Where is the check-in counter?", CorrectAnswer: "dónde está el mostrador de facturación", Explanation: "\"Facturación\" is the check-in process for luggage and boarding."},
		{Kind: exercise.MultipleChoice, Question: "What does \"el pasaporte\" mean?", Options: []string{"the ticket", "the passport", "the suitcase", "the gate"}, CorrectAnswer: "the passport", Explanation: "\"Pasaporte\" is a direct cognate of passport."},
		{Kind: exercise.Translate, Question: "Necesito ver su ___ de embarque. (boarding pass)", CorrectAnswer: "tarjeta", Explanation: "\"Tarjeta de embarque\" is the boarding pass."},
		{Kind: exercise.Listening, Question: "Type what you hear.", CorrectAnswer: "el vuelo está retrasado", AudioText: "El vuelo está retrasado.", Explanation: "\"Retrasado\" means delayed."},
		{Kind: exercise.Speaking, Question: "Say: \"¿Dónde está la puerta de embarque?\"", CorrectAnswer: "¿Dónde está la puerta de embarque?", AudioText: "¿Dónde está la puerta de embarque?", Explanation: "Asking for the departure gate."},
	},
	"2": {
		{Kind: exercise.Translate, Question: "Translate: I have a reservation.", CorrectAnswer: "tengo una reserva", Explanation: "\"Reserva\" covers hotel and restaurant bookings alike."},
		{Kind: exercise.MultipleChoice, Question: "\"Una habitación doble\" is…", Options: []string{"a single room", "a double room", "a suite", "a hallway"}, CorrectAnswer: "a double room", Explanation: "\"Doble\" modifies \"habitación\", room."},
		{Kind: exercise.Translate, Question: "¿A qué hora es el ___? (breakfast)", CorrectAnswer: "desayuno", Explanation: "\"Desayuno\" is breakfast."},
		{Kind: exercise.Listening, Question: "Type what you hear.", CorrectAnswer: "la llave de la habitación", AudioText: "La llave de la habitación.", Explanation: "\"Llave\" means key."},
		{Kind: exercise.Speaking, Question: "Say: \"Quisiera hacer el check-out, por favor.\"", CorrectAnswer: "Quisiera hacer el check-out, por favor.", AudioText: "Quisiera hacer el check-out, por favor.", Explanation: "\"Quisiera\" is the polite I-would-like form."},
	},
	"3": {
		{Kind: exercise.Translate, Question: "Translate: The bill, please.", CorrectAnswer: "la cuenta por favor", Explanation: "\"La cuenta\" is the restaurant bill."},
		{Kind: exercise.MultipleChoice, Question: "What would a vegetarian order?", Options: []string{"el pollo asado", "la ensalada mixta", "las gambas", "el chorizo"}, CorrectAnswer: "la ensalada mixta", Explanation: "A mixed salad is the only meat-free option listed."},
		{Kind: exercise.Translate, Question: "¿Me trae el ___, por favor? (menu)", CorrectAnswer: "menú", Explanation: "\"El menú\" or \"la carta\" both work in Spain."},
		{Kind: exercise.Listening, Question: "Type what you hear.", CorrectAnswer: "una mesa para dos", AudioText: "Una mesa para dos.", Explanation: "Asking for a table for two."},
		{Kind: exercise.Speaking, Question: "Say: \"¿Qué me recomienda?\"", CorrectAnswer: "¿Qué me recomienda?", AudioText: "¿Qué me recomienda?", Explanation: "Asking the waiter for a recommendation."},
	},
	"4": {
		{Kind: exercise.Translate, Question: "Translate: How much does the ticket cost?", CorrectAnswer: "cuánto cuesta el billete", Explanation: "\"Billete\" is a transport ticket in Spain."},
		{Kind: exercise.MultipleChoice, Question: "\"Estoy perdido\" means…", Options: []string{"I am tired", "I am lost", "I am late", "I am hungry"}, CorrectAnswer: "I am lost", Explanation: "\"Perdido\" from \"perder\", to lose."},
		{Kind: exercise.Translate, Question: "¿Dónde está la parada de ___? (bus)", CorrectAnswer: "autobús", Explanation: "\"Parada de autobús\" is the bus stop."},
		{Kind: exercise.Listening, Question: "Type what you hear.", CorrectAnswer: "siga todo recto", AudioText: "Siga todo recto.", Explanation: "\"Todo recto\" means straight ahead."},
		{Kind: exercise.Speaking, Question: "Say: \"¿Puede ayudarme, por favor?\"", CorrectAnswer: "¿Puede ayudarme, por favor?", AudioText: "¿Puede ayudarme, por favor?", Explanation: "A polite request for help."},
	},
	"5": {
		{Kind: exercise.Translate, Question: "Translate: The show starts at eight.", CorrectAnswer: "la función empieza a las ocho", Explanation: "\"Función\" is a theater showing."},
		{Kind: exercise.MultipleChoice, Question: "Where do you sit in \"el patio de butacas\"?", Options: []string{"the balcony", "the stalls", "the stage", "the lobby"}, CorrectAnswer: "the stalls", Explanation: "\"Butaca\" is a theater seat on the ground floor."},
		{Kind: exercise.Translate, Question: "Dos entradas para la ___ de noche. (performance)", CorrectAnswer: "función", Explanation: "Evening performance, \"función de noche\"."},
		{Kind: exercise.Listening, Question: "Type what you hear.", CorrectAnswer: "se abre el telón", AudioText: "Se abre el telón.", Explanation: "\"Telón\" is the stage curtain."},
		{Kind: exercise.Speaking, Question: "Say: \"¡Qué obra tan maravillosa!\"", CorrectAnswer: "¡Qué obra tan maravillosa!", AudioText: "¡Qué obra tan maravillosa!", Explanation: "Praising the play after the curtain call."},
	},
	"6": {
		{Kind: exercise.Roleplay, Question: "A local asks: \"¿De dónde eres?\" Reply that you are from your country and ask where they are from.", CorrectAnswer: "soy de mi país y tú de dónde eres", Explanation: "Keep it simple: \"Soy de…, ¿y tú?\""},
		{Kind: exercise.Roleplay, Question: "They say: \"¿Te gusta la ciudad?\" Say you like it a lot.", CorrectAnswer: "sí me gusta mucho", Explanation: "\"Me gusta mucho\" expresses strong liking."},
		{Kind: exercise.Roleplay, Question: "Ask them what they do for a living.", CorrectAnswer: "a qué te dedicas", Explanation: "\"¿A qué te dedicas?\" is the natural phrasing."},
		{Kind: exercise.Roleplay, Question: "They invite you for coffee. Accept enthusiastically.", CorrectAnswer: "claro me encantaría", Explanation: "\"Me encantaría\" — I would love to."},
		{Kind: exercise.Roleplay, Question: "Say goodbye and that it was a pleasure meeting them.", CorrectAnswer: "adiós ha sido un placer", Explanation: "\"Ha sido un placer\" closes a first meeting politely."},
	},
}
