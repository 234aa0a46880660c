package restcountries

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError возвращается операциями клиента при неуспешном HTTP статусе,
// сетевой ошибке или невалидном теле ответа.
type RequestError struct {
	Op         string // Имя операции, например "FetchAllCountries"
	URL        string // Запрошенный адрес
	StatusCode int    // HTTP статус; 0, если ответ не был получен
	Err        error  // Исходная ошибка, если есть
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: received non-2xx status code: %d", e.Op, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsNotFound сообщает, что API ответило 404 (или вернуло пустой список)
func IsNotFound(err error) bool {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == http.StatusNotFound
	}
	return false
}
