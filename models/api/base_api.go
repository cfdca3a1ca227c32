package apimodels

type Response struct {
	Status  string      `json:"status"`            //результат обработки fail/success
	Message string      `json:"message,omitempty"` //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`    //данные ответа
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //для списков, общее кол-во записей, учитывая фильтр (если он есть)
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

// NewErrorWithData - ошибка с дополнительными данными для клиента
func NewErrorWithData(message string, data interface{}) Response {
	return Response{
		Status:  "fail",
		Message: message,
		Data:    data,
	}
}

// NewValidationError - ошибка заполнения формы, в Data сообщения по полям
func NewValidationError(message string, fields map[string]string) Response {
	return Response{
		Status:  "fail",
		Message: message,
		Data:    fields,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}
