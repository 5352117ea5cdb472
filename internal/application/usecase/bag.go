package usecase

import "encoding/json"

// emptyBag es la bolsa de campos personalizados vacía.
var emptyBag = json.RawMessage(`{}`)

// objectBag valida que raw sea un objeto JSON. Devuelve (raw, true) si lo es;
// (nil, false) si está ausente, es null, array, escalar o JSON roto. No se
// valida el contenido contra las definiciones registradas: cualquier par
// slug/valor se persiste tal cual.
//
// `custom_fields: null` cuenta como ausente: en update conserva la bolsa
// almacenada en vez de vaciarla. Para borrar todos los valores se envía {}.
func objectBag(raw json.RawMessage) (json.RawMessage, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return nil, false
	}
	return raw, true
}

// normalizeBag aplica la regla de creación: objeto válido se conserva,
// cualquier otra cosa se sustituye por {}.
func normalizeBag(raw json.RawMessage) json.RawMessage {
	if bag, ok := objectBag(raw); ok {
		return bag
	}
	return emptyBag
}

// coalesceBag garantiza que una bolsa leída nunca sea null en la respuesta.
func coalesceBag(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return emptyBag
	}
	return raw
}
