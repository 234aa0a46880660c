package storage

import "errors"

// ErrKeyNotFound возвращается, когда для пользователя нет значения по ключу
var ErrKeyNotFound = errors.New("preference not found")

// ErrStorageClosed возвращается при обращении к закрытому хранилищу
var ErrStorageClosed = errors.New("storage is closed")
