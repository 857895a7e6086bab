package storage

import "errors"

// ErrNotFound lo devuelven todos los adapters de storage cuando el id no existe.
// Vive en ports para que los dominios lo reconozcan sin importar adapters.
var ErrNotFound = errors.New("not found")
