// Package sharehttp реализует Share API — HTTP-интерфейс ядра обмена файлами:
// приём частей загрузок, выдачу файлов целиком и по диапазонам, потоковый zip
// и удаление. Основные эндпоинты:
//   - POST /shares/{shareID}/files?id=&name=&chunkIndex=&totalChunks= — принимает base64-часть;
//     запрос, завершивший сборку, получает метаданные файла, остальные — подтверждение.
//   - GET /shares/{shareID}/files/{fileID} — отдаёт файл; заголовок Range даёт 206 с точным окном байт.
//   - GET /shares/{shareID}/files/zip — стримит zip-архив всех файлов шары.
//   - DELETE /shares/{shareID}/files/{fileID} — удаляет файл и его блоб.
//   - POST /admin/gc — инициирует сбор брошенных загрузок (ручной GC).
//   - GET /health — отдаёт агрегированные метрики по каталогам данных для health-check'ов.
package sharehttp
