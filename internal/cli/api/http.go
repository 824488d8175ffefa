package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// do выполняет запрос, подставляя Bearer-токен, и читает тело ответа целиком.
func do(req *http.Request, token string) (*http.Response, []byte, error) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, body, nil
}

// PostJSON отправляет JSON POST. Если token не пуст — добавляет Bearer-заголовок.
func PostJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return do(req, token)
}

// PutJSON отправляет JSON PUT с Bearer-заголовком.
func PutJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return do(req, token)
}

// Get выполняет GET с Bearer-заголовком.
func Get(url string, token string) (*http.Response, []byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, err
	}
	return do(req, token)
}

// Delete выполняет DELETE с Bearer-заголовком.
func Delete(url string, token string) (*http.Response, []byte, error) {
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		return nil, nil, err
	}
	return do(req, token)
}

// PostMultipart отправляет multipart-форму с текстовыми полями и файлом image.
// imagePath может быть пустым — тогда отправляются только поля.
func PostMultipart(method, url string, fields map[string]string, imagePath, token string) (*http.Response, []byte, error) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, nil, err
		}
	}

	if imagePath != "" {
		f, err := os.Open(imagePath)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		fw, err := mw.CreateFormFile("image", filepath.Base(imagePath))
		if err != nil {
			return nil, nil, err
		}
		if _, err := io.Copy(fw, f); err != nil {
			return nil, nil, err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequest(method, url, buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return do(req, token)
}
